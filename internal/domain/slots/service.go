package slots

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindOrCreate(ctx context.Context, fecha, hora string) (Slot, error) {
	fecha, err := NormalizeFecha(fecha)
	if err != nil {
		return Slot{}, err
	}
	hora, err = NormalizeHora(hora)
	if err != nil {
		return Slot{}, err
	}
	return s.repo.FindOrCreate(ctx, fecha, hora)
}

func (s *Service) ListAvailable(ctx context.Context, fecha string) ([]Slot, error) {
	fecha, err := NormalizeFecha(fecha)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAvailable(ctx, fecha)
}

// NormalizeFecha valida y normaliza una fecha YYYY-MM-DD.
func NormalizeFecha(fecha string) (string, error) {
	fecha = strings.TrimSpace(fecha)
	if fecha == "" {
		return "", ErrInvalidInput
	}
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "", ErrInvalidInput
	}
	return t.Format("2006-01-02"), nil
}

// NormalizeHora valida y normaliza una hora HH:MM (acepta HH:MM:SS).
func NormalizeHora(hora string) (string, error) {
	hora = strings.TrimSpace(hora)
	if hora == "" {
		return "", ErrInvalidInput
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, hora); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", ErrInvalidInput
}
