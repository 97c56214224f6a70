package appointments

import (
	"context"
	"time"
)

// Repository es el motor de reservas. Las operaciones de escritura son
// transaccionales: o se aplican todos los efectos (cita, tramite_usuario,
// flag del horario) o ninguno.
type Repository interface {
	// Reserve ejecuta la reserva completa. Devuelve ErrAlreadyBooked si el
	// usuario ya tiene una cita activa en ese horario, ErrSlotOccupied si el
	// horario está tomado por otra cita activa y ErrUnknownOffering si el
	// código de trámite no existe en el catálogo.
	Reserve(ctx context.Context, res Reservation) (Appointment, error)

	GetByID(ctx context.Context, id string) (Appointment, error)

	// ListByUser devuelve todas las citas del usuario (incluye canceladas y
	// finalizadas) ordenadas por fecha DESC, hora DESC.
	ListByUser(ctx context.Context, usuarioID string) ([]Appointment, error)

	// Reschedule mueve la cita al horario (fecha, hora), re-ejecutando los
	// chequeos de conflicto contra el horario nuevo y liberando el anterior.
	Reschedule(ctx context.Context, id, fecha, hora string, at time.Time) (Appointment, error)

	// Cancel marca la cita y su tramite_usuario como CANCELADO y libera el
	// horario.
	Cancel(ctx context.Context, id, motivo string, at time.Time) (Appointment, error)

	// Delete elimina físicamente una cita terminal, libera su horario y
	// borra el tramite_usuario si quedó sin citas. ErrBadState si la cita
	// no está en estado terminal.
	Delete(ctx context.Context, id string) error
}
