package slots

import "context"

type Repository interface {
	// FindOrCreate busca el horario (fecha, hora); si no existe lo inserta
	// con disponible=true y capacidad 1.
	FindOrCreate(ctx context.Context, fecha, hora string) (Slot, error)

	// ListAvailable devuelve los horarios libres de una fecha, ordenados por hora.
	ListAvailable(ctx context.Context, fecha string) ([]Slot, error)
}
