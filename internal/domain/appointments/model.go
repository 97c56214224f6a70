package appointments

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status son los estados de una cita. Los valores van tal cual al wire y a la
// base de datos.
type Status string

const (
	StatusAgendado     Status = "AGENDADO"
	StatusEnProceso    Status = "EN_PROCESO"
	StatusReprogramado Status = "REPROGRAMADO"
	StatusCancelado    Status = "CANCELADO"
	StatusFinalizado   Status = "FINALIZADO"
)

// IsActive indica si el estado ocupa horario. Solo las citas activas cuentan
// para los chequeos de doble reserva.
func (s Status) IsActive() bool {
	return s == StatusAgendado || s == StatusEnProceso
}

// IsTerminal indica si la cita puede eliminarse físicamente.
func (s Status) IsTerminal() bool {
	return s == StatusCancelado || s == StatusFinalizado
}

// Appointment es la cita agendada. Mantiene exactamente una referencia a
// horario; los campos Tramite* y Precio vienen del join con el catálogo
// para la vista del cliente.
type Appointment struct {
	ID               string
	UsuarioID        string
	TramiteCodigo    string
	TramiteUsuarioID string
	HorarioID        string

	Fecha string // YYYY-MM-DD (del horario)
	Hora  string // HH:MM (del horario)

	Estado            Status
	MotivoCancelacion string
	Observaciones     string

	CreadaEn       time.Time
	ReprogramadaEn *time.Time
	CanceladaEn    *time.Time

	TramiteNombre      string
	TramiteDescripcion string
	Precio             decimal.Decimal
}

// Reservation es la unidad de trabajo que el repositorio ejecuta de forma
// atómica: resolver horario, chequear conflictos, crear tramite_usuario y
// cita, y marcar el horario como ocupado.
type Reservation struct {
	CitaID           string
	TramiteUsuarioID string
	UsuarioID        string
	TramiteCodigo    string
	Fecha            string
	Hora             string
	Observaciones    string
	CreadaEn         time.Time
}
