package slots

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"notaria-citas/internal/middleware"
	"notaria-citas/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/horarios", listAvailableHandler(svc))
}

type slotResponse struct {
	ID         string    `json:"id"`
	Fecha      string    `json:"fecha"`
	Hora       string    `json:"hora"`
	Capacidad  int       `json:"capacidad"`
	Disponible bool      `json:"disponible"`
	CreadoEn   time.Time `json:"created_at"`
}

// listAvailableHandler godoc
// @Summary Horarios disponibles para una fecha
// @Param fecha query string true "fecha YYYY-MM-DD"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Router /horarios [get]
func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Fail(w, http.StatusUnauthorized, "Token no proporcionado o inválido")
			return
		}

		items, err := svc.ListAvailable(r.Context(), r.URL.Query().Get("fecha"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Fail(w, http.StatusBadRequest, "La fecha es obligatoria")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error al obtener horarios")
			return
		}

		mensaje := "Horarios disponibles"
		if len(items) == 0 {
			mensaje = "No hay horarios disponibles"
		}

		out := make([]slotResponse, 0, len(items))
		for _, s := range items {
			out = append(out, slotResponse{
				ID:         s.ID,
				Fecha:      s.Fecha,
				Hora:       s.Hora,
				Capacidad:  s.Capacidad,
				Disponible: s.Disponible,
				CreadoEn:   s.CreadoEn,
			})
		}
		httpjson.OK(w, http.StatusOK, mensaje, out)
	}
}
