package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"notaria-citas/internal/domain/offerings"
)

type OfferingsRepo struct {
	mu       sync.RWMutex
	byCodigo map[string]offerings.Offering
}

func NewOfferingsRepo() *OfferingsRepo {
	return &OfferingsRepo{
		byCodigo: make(map[string]offerings.Offering),
	}
}

func (r *OfferingsRepo) Upsert(ctx context.Context, o offerings.Offering) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byCodigo[o.Codigo] = o
	return nil
}

func (r *OfferingsRepo) ListActive(ctx context.Context) ([]offerings.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]offerings.Offering, 0, len(r.byCodigo))
	for _, o := range r.byCodigo {
		if o.Activo {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *OfferingsRepo) Search(ctx context.Context, query string) ([]offerings.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]offerings.Offering, 0)
	for _, o := range r.byCodigo {
		if !o.Activo {
			continue
		}
		if strings.Contains(strings.ToLower(o.Nombre), q) ||
			strings.Contains(strings.ToLower(o.Descripcion), q) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *OfferingsRepo) GetByCode(ctx context.Context, codigo string) (offerings.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byCodigo[codigo]
	if !ok {
		return offerings.Offering{}, offerings.ErrNotFound
	}
	return o, nil
}

// exists se usa desde el motor de reservas en memoria, que ya serializa sus
// operaciones; solo necesita el lock de lectura local.
func (r *OfferingsRepo) exists(codigo string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byCodigo[codigo]
	return ok
}
