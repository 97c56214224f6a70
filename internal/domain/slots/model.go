package slots

import "time"

// Slot representa un horario reservable (fecha, hora).
// Se crea perezosamente en el primer intento de reserva y nunca se borra:
// al cancelarse la cita que lo ocupa vuelve a quedar disponible.
//
// Disponible es un caché del invariante real ("ninguna cita activa referencia
// este horario"); la verificación autoritativa vive en el motor de reservas.
type Slot struct {
	ID string

	Fecha string // YYYY-MM-DD
	Hora  string // HH:MM

	Capacidad  int
	Disponible bool

	CreadoEn time.Time
}
