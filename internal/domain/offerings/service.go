package offerings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Seed carga el catálogo embebido con upsert por código.
// Es idempotente: se ejecuta en cada arranque sin duplicar filas.
func (s *Service) Seed(ctx context.Context) error {
	now := s.now()
	for _, o := range Catalog() {
		o.Activo = true
		o.CreadoEn = now
		if err := s.repo.Upsert(ctx, o); err != nil {
			return fmt.Errorf("seed tramite %s: %w", o.Codigo, err)
		}
	}
	return nil
}

func (s *Service) ListActive(ctx context.Context) ([]Offering, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Offering, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) GetByCode(ctx context.Context, codigo string) (Offering, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return Offering{}, ErrNotFound
	}
	return s.repo.GetByCode(ctx, codigo)
}
