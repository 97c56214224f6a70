package offerings

import "context"

type Repository interface {
	Upsert(ctx context.Context, o Offering) error
	ListActive(ctx context.Context) ([]Offering, error)
	Search(ctx context.Context, query string) ([]Offering, error)
	GetByCode(ctx context.Context, codigo string) (Offering, error)
}
