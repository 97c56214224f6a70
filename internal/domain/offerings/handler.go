package offerings

import (
	"errors"
	"net/http"

	"notaria-citas/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tramites", func(tr chi.Router) {
		tr.Get("/", listOfferingsHandler(svc))
		tr.Get("/buscar", searchOfferingsHandler(svc))
		tr.Get("/{codigo}", getOfferingHandler(svc))
	})
}

type offeringResponse struct {
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Requisitos       string          `json:"requisitos"`
	Precio           decimal.Decimal `json:"precio"`
	DuracionEstimada string          `json:"duracion_estimada"`
	Categoria        string          `json:"categoria"`
	Activo           bool            `json:"activo"`
}

// listOfferingsHandler godoc
// @Summary Listar trámites activos
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Router /tramites [get]
func listOfferingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error al obtener trámites")
			return
		}
		httpjson.OK(w, http.StatusOK, "Trámites obtenidos", toResponses(items))
	}
}

// searchOfferingsHandler godoc
// @Summary Buscar trámites por nombre o descripción
// @Param q query string true "texto a buscar"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Router /tramites/buscar [get]
func searchOfferingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "El parámetro de búsqueda es obligatorio")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error en la búsqueda")
			return
		}

		mensaje := "Resultados encontrados"
		if len(items) == 0 {
			mensaje = "No se encontraron resultados"
		}
		httpjson.OK(w, http.StatusOK, mensaje, toResponses(items))
	}
}

// getOfferingHandler godoc
// @Summary Detalle de un trámite
// @Param codigo path string true "código del trámite"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Router /tramites/{codigo} [get]
func getOfferingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByCode(r.Context(), chi.URLParam(r, "codigo"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.Fail(w, http.StatusNotFound, "Trámite no encontrado")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error al obtener trámite")
			return
		}
		httpjson.OK(w, http.StatusOK, "Trámite obtenido", toResponse(o))
	}
}

func toResponse(o Offering) offeringResponse {
	return offeringResponse{
		Codigo:           o.Codigo,
		Nombre:           o.Nombre,
		Descripcion:      o.Descripcion,
		Requisitos:       o.Requisitos,
		Precio:           o.Precio,
		DuracionEstimada: o.DuracionEstimada,
		Categoria:        o.Categoria,
		Activo:           o.Activo,
	}
}

func toResponses(items []Offering) []offeringResponse {
	out := make([]offeringResponse, 0, len(items))
	for _, o := range items {
		out = append(out, toResponse(o))
	}
	return out
}
