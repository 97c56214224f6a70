package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"notaria-citas/internal/domain/slots"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPastDate        = errors.New("fecha en el pasado")
	ErrNotFound        = errors.New("not found")
	ErrBadState        = errors.New("invalid state")
	ErrAlreadyBooked   = errors.New("usuario ya tiene cita activa en este horario")
	ErrSlotOccupied    = errors.New("horario ocupado")
	ErrUnknownOffering = errors.New("tramite no encontrado")
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

type CreateInput struct {
	UsuarioID     string
	TramiteCodigo string
	Fecha         string
	Hora          string
	Observaciones string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	usuarioID := strings.TrimSpace(in.UsuarioID)
	codigo := strings.TrimSpace(in.TramiteCodigo)
	if usuarioID == "" || codigo == "" {
		return Appointment{}, ErrInvalidInput
	}

	fecha, hora, err := s.validarFechaHora(in.Fecha, in.Hora)
	if err != nil {
		return Appointment{}, err
	}

	res := Reservation{
		CitaID:           uuid.NewString(),
		TramiteUsuarioID: uuid.NewString(),
		UsuarioID:        usuarioID,
		TramiteCodigo:    codigo,
		Fecha:            fecha,
		Hora:             hora,
		Observaciones:    strings.TrimSpace(in.Observaciones),
		CreadaEn:         s.now(),
	}

	return s.repo.Reserve(ctx, res)
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, usuarioID string) ([]Appointment, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, usuarioID)
}

func (s *Service) Reschedule(ctx context.Context, id, fecha, hora string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	fecha, hora, err := s.validarFechaHora(fecha, hora)
	if err != nil {
		return Appointment{}, err
	}
	return s.repo.Reschedule(ctx, id, fecha, hora, s.now())
}

func (s *Service) Cancel(ctx context.Context, id, motivo string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		motivo = "Cancelado por el usuario"
	}
	return s.repo.Cancel(ctx, id, motivo, s.now())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// validarFechaHora normaliza fecha y hora y rechaza fechas anteriores a hoy
// (se permite agendar para el mismo día).
func (s *Service) validarFechaHora(fecha, hora string) (string, string, error) {
	fecha, err := slots.NormalizeFecha(fecha)
	if err != nil {
		return "", "", ErrInvalidInput
	}
	hora, err = slots.NormalizeHora(hora)
	if err != nil {
		return "", "", ErrInvalidInput
	}

	hoy := s.now().Format("2006-01-02")
	if fecha < hoy {
		return "", "", ErrPastDate
	}
	return fecha, hora, nil
}
