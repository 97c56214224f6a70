package appointments

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Appointment

	lastReservation Reservation
	lastMotivo      string
	lastFecha       string
	lastHora        string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Reserve(ctx context.Context, res Reservation) (Appointment, error) {
	r.lastReservation = res
	a := Appointment{
		ID:               res.CitaID,
		UsuarioID:        res.UsuarioID,
		TramiteCodigo:    res.TramiteCodigo,
		TramiteUsuarioID: res.TramiteUsuarioID,
		Fecha:            res.Fecha,
		Hora:             res.Hora,
		Estado:           StatusAgendado,
		Observaciones:    res.Observaciones,
		CreadaEn:         res.CreadaEn,
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByUser(ctx context.Context, usuarioID string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.UsuarioID == usuarioID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Reschedule(ctx context.Context, id, fecha, hora string, at time.Time) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	r.lastFecha, r.lastHora = fecha, hora
	a.Fecha, a.Hora = fecha, hora
	a.Estado = StatusAgendado
	a.ReprogramadaEn = &at
	r.byID[id] = a
	return a, nil
}

func (r *testRepo) Cancel(ctx context.Context, id, motivo string, at time.Time) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	r.lastMotivo = motivo
	a.Estado = StatusCancelado
	a.MotivoCancelacion = motivo
	a.CanceladaEn = &at
	r.byID[id] = a
	return a, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	a, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if !a.Estado.IsTerminal() {
		return ErrBadState
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func fixedNow() time.Time {
	return time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
}

func TestService_Create_RequiresUsuarioYTramite(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = fixedNow

	_, err := svc.Create(context.Background(), CreateInput{
		Fecha: "2025-12-01", Hora: "10:00",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", Fecha: "2025-12-01", Hora: "10:00",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput sin tramite, got %v", err)
	}
}

func TestService_Create_RejectsFechaInvalida(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = fixedNow

	_, err := svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", TramiteCodigo: "POD-001",
		Fecha: "01/12/2025", Hora: "10:00",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput para fecha mal formada, got %v", err)
	}
}

func TestService_Create_RejectsPastDate(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = fixedNow

	_, err := svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", TramiteCodigo: "POD-001",
		Fecha: "2025-11-14", Hora: "10:00",
	})
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}
}

func TestService_Create_AllowsSameDay(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = fixedNow

	a, err := svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", TramiteCodigo: "POD-001",
		Fecha: "2025-11-15", Hora: "16:00",
	})
	if err != nil {
		t.Fatalf("create same day: %v", err)
	}
	if a.Fecha != "2025-11-15" {
		t.Fatalf("unexpected fecha %q", a.Fecha)
	}
}

func TestService_Create_GeneratesIDsAndNormalizesHora(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = fixedNow

	a, err := svc.Create(context.Background(), CreateInput{
		UsuarioID:     "u1",
		TramiteCodigo: "POD-001",
		Fecha:         "2025-12-01",
		Hora:          "10:00:00",
		Observaciones: "  primera visita  ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if a.ID == "" || a.TramiteUsuarioID == "" {
		t.Fatalf("expected generated ids, got %+v", a)
	}
	if a.ID == a.TramiteUsuarioID {
		t.Fatalf("cita y tramite_usuario comparten id")
	}
	if repo.lastReservation.Hora != "10:00" {
		t.Fatalf("expected hora normalizada 10:00, got %q", repo.lastReservation.Hora)
	}
	if repo.lastReservation.Observaciones != "primera visita" {
		t.Fatalf("expected observaciones sin espacios, got %q", repo.lastReservation.Observaciones)
	}
	if !repo.lastReservation.CreadaEn.Equal(fixedNow()) {
		t.Fatalf("expected CreadaEn = now fijo, got %v", repo.lastReservation.CreadaEn)
	}
}

func TestService_Cancel_DefaultMotivo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = fixedNow

	a, err := svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", TramiteCodigo: "POD-001",
		Fecha: "2025-12-01", Hora: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Cancel(context.Background(), a.ID, "   ")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if repo.lastMotivo != "Cancelado por el usuario" {
		t.Fatalf("expected motivo por defecto, got %q", repo.lastMotivo)
	}
	if got.Estado != StatusCancelado {
		t.Fatalf("expected estado CANCELADO, got %s", got.Estado)
	}
}

func TestService_Reschedule_ValidatesFecha(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = fixedNow

	a, err := svc.Create(context.Background(), CreateInput{
		UsuarioID: "u1", TramiteCodigo: "POD-001",
		Fecha: "2025-12-01", Hora: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Reschedule(context.Background(), a.ID, "2025-01-01", "10:00"); !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}

	got, err := svc.Reschedule(context.Background(), a.ID, "2025-12-02", "11:00:00")
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if repo.lastHora != "11:00" {
		t.Fatalf("expected hora normalizada, got %q", repo.lastHora)
	}
	if got.ReprogramadaEn == nil || !got.ReprogramadaEn.Equal(fixedNow()) {
		t.Fatalf("expected ReprogramadaEn = now fijo, got %v", got.ReprogramadaEn)
	}
}

func TestService_Delete_EmptyID(t *testing.T) {
	svc := NewService(newTestRepo())

	if err := svc.Delete(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
