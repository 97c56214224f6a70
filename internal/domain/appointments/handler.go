package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"notaria-citas/internal/middleware"
	"notaria-citas/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/citas", func(cr chi.Router) {
		cr.Post("/", createAppointmentHandler(svc))
		cr.Get("/usuario/{usuarioID}", listByUserHandler(svc))
		cr.Get("/{citaID}", getAppointmentHandler(svc))
		cr.Patch("/{citaID}/reprogramar", rescheduleHandler(svc))
		cr.Patch("/{citaID}/cancelar", cancelHandler(svc))
		cr.Delete("/{citaID}", deleteHandler(svc))
	})
}

type createCitaRequest struct {
	UsuarioID     string `json:"usuario_id"`
	TramiteCodigo string `json:"tramite_codigo"`
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	Observaciones string `json:"observaciones"`
}

type citaResponse struct {
	ID                 string          `json:"id"`
	UsuarioID          string          `json:"usuario_id"`
	TramiteUsuarioID   string          `json:"tramite_usuario_id"`
	TramiteCodigo      string          `json:"tramite_codigo"`
	Estado             string          `json:"estado"`
	Fecha              string          `json:"fecha"`
	Hora               string          `json:"hora"`
	TramiteNombre      string          `json:"tramite_nombre"`
	TramiteDescripcion string          `json:"tramite_descripcion"`
	Precio             decimal.Decimal `json:"precio"`
	MotivoCancelacion  string          `json:"motivo_cancelacion,omitempty"`
	Observaciones      string          `json:"observaciones,omitempty"`
	CreadaEn           time.Time       `json:"creada_en"`
	ReprogramadaEn     *time.Time      `json:"reprogramada_en,omitempty"`
	CanceladaEn        *time.Time      `json:"cancelada_en,omitempty"`
}

func requireClaims(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		httpjson.Fail(w, http.StatusUnauthorized, "Token no proporcionado o inválido")
		return false
	}
	return true
}

// createAppointmentHandler godoc
// @Summary Reservar una cita
// @Accept json
// @Produce json
// @Success 201 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Router /citas [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req createCitaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		cita, err := svc.Create(r.Context(), CreateInput{
			UsuarioID:     req.UsuarioID,
			TramiteCodigo: req.TramiteCodigo,
			Fecha:         req.Fecha,
			Hora:          req.Hora,
			Observaciones: req.Observaciones,
		})
		if err != nil {
			writeCitaError(w, err)
			return
		}

		httpjson.OK(w, http.StatusCreated, "Cita creada exitosamente", toCitaResponse(cita))
	}
}

// listByUserHandler godoc
// @Summary Citas de un usuario, más recientes primero
// @Param usuarioID path string true "id del usuario"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Router /citas/usuario/{usuarioID} [get]
func listByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		items, err := svc.ListByUser(r.Context(), chi.URLParam(r, "usuarioID"))
		if err != nil {
			httpjson.Fail(w, http.StatusInternalServerError, "Error al obtener citas")
			return
		}

		out := make([]citaResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCitaResponse(c))
		}
		httpjson.OK(w, http.StatusOK, "Citas obtenidas", out)
	}
}

// getAppointmentHandler godoc
// @Summary Detalle de una cita
// @Param citaID path string true "id de la cita"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Router /citas/{citaID} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		cita, err := svc.GetByID(r.Context(), chi.URLParam(r, "citaID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.Fail(w, http.StatusNotFound, "Cita no encontrada")
				return
			}
			httpjson.Fail(w, http.StatusInternalServerError, "Error al obtener la cita")
			return
		}
		httpjson.OK(w, http.StatusOK, "Cita obtenida", toCitaResponse(cita))
	}
}

type reprogramarRequest struct {
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`
}

// rescheduleHandler godoc
// @Summary Reprogramar una cita a otro horario
// @Param citaID path string true "id de la cita"
// @Accept json
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Router /citas/{citaID}/reprogramar [patch]
func rescheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req reprogramarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}
		if strings.TrimSpace(req.Fecha) == "" || strings.TrimSpace(req.Hora) == "" {
			httpjson.Fail(w, http.StatusBadRequest, "La fecha y hora son obligatorias")
			return
		}

		cita, err := svc.Reschedule(r.Context(), chi.URLParam(r, "citaID"), req.Fecha, req.Hora)
		if err != nil {
			writeCitaError(w, err)
			return
		}
		httpjson.OK(w, http.StatusOK, "Cita reprogramada exitosamente", toCitaResponse(cita))
	}
}

type cancelarRequest struct {
	Motivo string `json:"motivo"`
}

// cancelHandler godoc
// @Summary Cancelar una cita y liberar el horario
// @Param citaID path string true "id de la cita"
// @Accept json
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Router /citas/{citaID}/cancelar [patch]
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req cancelarRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		cita, err := svc.Cancel(r.Context(), chi.URLParam(r, "citaID"), req.Motivo)
		if err != nil {
			writeCitaError(w, err)
			return
		}
		httpjson.OK(w, http.StatusOK, "Cita cancelada exitosamente y horario liberado", toCitaResponse(cita))
	}
}

// deleteHandler godoc
// @Summary Eliminar físicamente una cita cancelada o finalizada
// @Param citaID path string true "id de la cita"
// @Produce json
// @Success 200 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Router /citas/{citaID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "citaID")); err != nil {
			writeCitaError(w, err)
			return
		}
		httpjson.OK(w, http.StatusOK, "Cita eliminada exitosamente y horario liberado", nil)
	}
}

// writeCitaError mapea los sentinels del dominio a status + mensaje.
// Los conflictos de reserva responden 400 (no 409): es el contrato que el
// cliente móvil ya maneja.
func writeCitaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Fail(w, http.StatusBadRequest, "Por favor, complete todos los datos: fecha, hora y trámite")
	case errors.Is(err, ErrPastDate):
		httpjson.Fail(w, http.StatusBadRequest, "No se pueden agendar citas en fechas pasadas")
	case errors.Is(err, ErrAlreadyBooked):
		httpjson.Fail(w, http.StatusBadRequest, "Ya tiene una cita agendada para este horario. Seleccione un horario diferente.")
	case errors.Is(err, ErrSlotOccupied):
		httpjson.Fail(w, http.StatusBadRequest, "Este horario ya está ocupado. Por favor, seleccione otro horario disponible.")
	case errors.Is(err, ErrUnknownOffering):
		httpjson.Fail(w, http.StatusBadRequest, "Trámite no encontrado")
	case errors.Is(err, ErrNotFound):
		httpjson.Fail(w, http.StatusNotFound, "Cita no encontrada")
	case errors.Is(err, ErrBadState):
		httpjson.Fail(w, http.StatusBadRequest, "Solo se pueden eliminar citas canceladas o finalizadas")
	default:
		httpjson.FailErr(w, http.StatusInternalServerError, "Error interno del servidor", err)
	}
}

func toCitaResponse(c Appointment) citaResponse {
	return citaResponse{
		ID:                 c.ID,
		UsuarioID:          c.UsuarioID,
		TramiteUsuarioID:   c.TramiteUsuarioID,
		TramiteCodigo:      c.TramiteCodigo,
		Estado:             string(c.Estado),
		Fecha:              c.Fecha,
		Hora:               c.Hora,
		TramiteNombre:      c.TramiteNombre,
		TramiteDescripcion: c.TramiteDescripcion,
		Precio:             c.Precio,
		MotivoCancelacion:  c.MotivoCancelacion,
		Observaciones:      c.Observaciones,
		CreadaEn:           c.CreadaEn,
		ReprogramadaEn:     c.ReprogramadaEn,
		CanceladaEn:        c.CanceladaEn,
	}
}
