package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"notaria-citas/internal/domain/appointments"
	"notaria-citas/internal/domain/offerings"

	"github.com/google/uuid"
)

func newTestEngine(t *testing.T) (*AppointmentsRepo, *SlotsRepo, *OfferingsRepo) {
	t.Helper()

	slotsRepo := NewSlotsRepo()
	offeringsRepo := NewOfferingsRepo()
	if err := offeringsRepo.Upsert(context.Background(), offerings.Offering{
		Codigo: "POD-001",
		Nombre: "Poder Simple",
		Activo: true,
	}); err != nil {
		t.Fatalf("seed tramite: %v", err)
	}
	return NewAppointmentsRepo(slotsRepo, offeringsRepo), slotsRepo, offeringsRepo
}

func newReservation(usuarioID, fecha, hora string) appointments.Reservation {
	return appointments.Reservation{
		CitaID:           uuid.NewString(),
		TramiteUsuarioID: uuid.NewString(),
		UsuarioID:        usuarioID,
		TramiteCodigo:    "POD-001",
		Fecha:            fecha,
		Hora:             hora,
		CreadaEn:         time.Now().UTC(),
	}
}

func TestReserve_CreatesCitaAndOccupiesSlot(t *testing.T) {
	repo, slotsRepo, _ := newTestEngine(t)
	ctx := context.Background()

	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if cita.Estado != appointments.StatusAgendado {
		t.Fatalf("expected AGENDADO, got %s", cita.Estado)
	}
	if cita.TramiteNombre != "Poder Simple" {
		t.Fatalf("expected join con catalogo, got %q", cita.TramiteNombre)
	}

	libres, err := slotsRepo.ListAvailable(ctx, "2025-12-01")
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	for _, s := range libres {
		if s.Hora == "10:00" {
			t.Fatalf("el horario reservado sigue disponible")
		}
	}
}

func TestReserve_SlotOccupiedByOtherUser(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00")); err != nil {
		t.Fatalf("primera reserva: %v", err)
	}

	_, err := repo.Reserve(ctx, newReservation("u2", "2025-12-01", "10:00"))
	if !errors.Is(err, appointments.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
}

func TestReserve_SameUserSameSlot(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00")); err != nil {
		t.Fatalf("primera reserva: %v", err)
	}

	_, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if !errors.Is(err, appointments.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}
}

func TestReserve_UnknownOffering(t *testing.T) {
	repo, _, _ := newTestEngine(t)

	res := newReservation("u1", "2025-12-01", "10:00")
	res.TramiteCodigo = "NOPE-999"

	_, err := repo.Reserve(context.Background(), res)
	if !errors.Is(err, appointments.ErrUnknownOffering) {
		t.Fatalf("expected ErrUnknownOffering, got %v", err)
	}
}

func TestCancel_FreesSlotForRebooking(t *testing.T) {
	repo, slotsRepo, _ := newTestEngine(t)
	ctx := context.Background()

	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	cancelada, err := repo.Cancel(ctx, cita.ID, "ya no puedo asistir", time.Now().UTC())
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelada.Estado != appointments.StatusCancelado {
		t.Fatalf("expected CANCELADO, got %s", cancelada.Estado)
	}
	if cancelada.MotivoCancelacion != "ya no puedo asistir" {
		t.Fatalf("unexpected motivo %q", cancelada.MotivoCancelacion)
	}
	if cancelada.CanceladaEn == nil {
		t.Fatalf("expected CanceladaEn")
	}

	if s, ok := slotsRepo.get(cita.HorarioID); !ok || !s.Disponible {
		t.Fatalf("el horario no quedo liberado")
	}

	// Otro usuario puede tomar el horario liberado.
	if _, err := repo.Reserve(ctx, newReservation("u2", "2025-12-01", "10:00")); err != nil {
		t.Fatalf("re-reserva tras cancelacion: %v", err)
	}
}

func TestReschedule_MovesCitaAndSwapsSlots(t *testing.T) {
	repo, slotsRepo, _ := newTestEngine(t)
	ctx := context.Background()

	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	horarioAnterior := cita.HorarioID

	movida, err := repo.Reschedule(ctx, cita.ID, "2025-12-02", "11:00", time.Now().UTC())
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if movida.Fecha != "2025-12-02" || movida.Hora != "11:00" {
		t.Fatalf("unexpected horario %s %s", movida.Fecha, movida.Hora)
	}
	if movida.Estado != appointments.StatusAgendado {
		t.Fatalf("expected AGENDADO tras reprogramar, got %s", movida.Estado)
	}
	if movida.ReprogramadaEn == nil {
		t.Fatalf("expected ReprogramadaEn")
	}

	if s, ok := slotsRepo.get(horarioAnterior); !ok || !s.Disponible {
		t.Fatalf("el horario anterior no quedo liberado")
	}
	if s, ok := slotsRepo.get(movida.HorarioID); !ok || s.Disponible {
		t.Fatalf("el horario nuevo no quedo ocupado")
	}
}

func TestReschedule_TargetOccupied(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := repo.Reserve(ctx, newReservation("u2", "2025-12-02", "11:00")); err != nil {
		t.Fatalf("reserva ajena: %v", err)
	}
	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	_, err = repo.Reschedule(ctx, cita.ID, "2025-12-02", "11:00", time.Now().UTC())
	if !errors.Is(err, appointments.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
}

func TestReschedule_SameSlotIsNoConflict(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// Reprogramar al mismo horario no debe chocar consigo misma.
	if _, err := repo.Reschedule(ctx, cita.ID, "2025-12-01", "10:00", time.Now().UTC()); err != nil {
		t.Fatalf("reschedule al mismo horario: %v", err)
	}
}

func TestDelete_RequiresTerminalState(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	cita, err := repo.Reserve(ctx, newReservation("u1", "2025-12-01", "10:00"))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := repo.Delete(ctx, cita.ID); !errors.Is(err, appointments.ErrBadState) {
		t.Fatalf("expected ErrBadState para cita activa, got %v", err)
	}

	if _, err := repo.Cancel(ctx, cita.ID, "motivo", time.Now().UTC()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := repo.Delete(ctx, cita.ID); err != nil {
		t.Fatalf("delete tras cancelar: %v", err)
	}

	if _, err := repo.GetByID(ctx, cita.ID); !errors.Is(err, appointments.ErrNotFound) {
		t.Fatalf("expected ErrNotFound tras eliminar, got %v", err)
	}

	// El tramite_usuario quedo sin citas, tambien debe desaparecer.
	repo.mu.Lock()
	_, queda := repo.tramitesUsuarios[cita.TramiteUsuarioID]
	repo.mu.Unlock()
	if queda {
		t.Fatalf("el tramite_usuario no se elimino en cascada")
	}
}

func TestReserve_ConcurrentSameSlot_OnlyOneWins(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	const n = 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		busy  int
		otros []error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Reserve(ctx, newReservation(fmt.Sprintf("u%d", i), "2025-12-01", "10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, appointments.ErrSlotOccupied):
				busy++
			default:
				otros = append(otros, err)
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactamente 1 reserva exitosa, got %d", wins)
	}
	if busy != n-1 {
		t.Fatalf("expected %d conflictos, got %d (otros: %v)", n-1, busy, otros)
	}
}

func TestListByUser_OrderedDesc(t *testing.T) {
	repo, _, _ := newTestEngine(t)
	ctx := context.Background()

	for _, h := range []struct{ fecha, hora string }{
		{"2025-12-01", "09:00"},
		{"2025-12-03", "10:00"},
		{"2025-12-01", "15:00"},
	} {
		if _, err := repo.Reserve(ctx, newReservation("u1", h.fecha, h.hora)); err != nil {
			t.Fatalf("reserve %s %s: %v", h.fecha, h.hora, err)
		}
	}

	citas, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(citas) != 3 {
		t.Fatalf("expected 3 citas, got %d", len(citas))
	}
	want := []struct{ fecha, hora string }{
		{"2025-12-03", "10:00"},
		{"2025-12-01", "15:00"},
		{"2025-12-01", "09:00"},
	}
	for i, w := range want {
		if citas[i].Fecha != w.fecha || citas[i].Hora != w.hora {
			t.Fatalf("orden inesperado en %d: %s %s", i, citas[i].Fecha, citas[i].Hora)
		}
	}
}
