package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"notaria-citas/internal/domain/slots"

	"github.com/google/uuid"
)

type SlotsRepo struct {
	mu   sync.RWMutex
	byID map[string]slots.Slot
	// índice (fecha|hora) -> id
	byKey map[string]string

	now func() time.Time
}

func NewSlotsRepo() *SlotsRepo {
	return &SlotsRepo{
		byID:  make(map[string]slots.Slot),
		byKey: make(map[string]string),
		now:   time.Now,
	}
}

func slotKey(fecha, hora string) string {
	return fecha + "|" + hora
}

func (r *SlotsRepo) FindOrCreate(ctx context.Context, fecha, hora string) (slots.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findOrCreateLocked(fecha, hora), nil
}

func (r *SlotsRepo) ListAvailable(ctx context.Context, fecha string) ([]slots.Slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]slots.Slot, 0)
	for _, s := range r.byID {
		if s.Fecha == fecha && s.Disponible {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hora < out[j].Hora })
	return out, nil
}

func (r *SlotsRepo) findOrCreateLocked(fecha, hora string) slots.Slot {
	if id, ok := r.byKey[slotKey(fecha, hora)]; ok {
		return r.byID[id]
	}
	s := slots.Slot{
		ID:         uuid.NewString(),
		Fecha:      fecha,
		Hora:       hora,
		Capacidad:  1,
		Disponible: true,
		CreadoEn:   r.now().UTC(),
	}
	r.byID[s.ID] = s
	r.byKey[slotKey(fecha, hora)] = s.ID
	return s
}

// Helpers para el motor de reservas en memoria. Toman el lock local; la
// atomicidad de la operación compuesta la garantiza el mutex del motor.

func (r *SlotsRepo) findOrCreate(fecha, hora string) slots.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.findOrCreateLocked(fecha, hora)
}

func (r *SlotsRepo) get(id string) (slots.Slot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	return s, ok
}

func (r *SlotsRepo) setDisponible(id string, disponible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.byID[id]; ok {
		s.Disponible = disponible
		r.byID[id] = s
	}
}
