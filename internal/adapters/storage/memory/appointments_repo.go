package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"notaria-citas/internal/domain/appointments"
)

type citaRecord struct {
	ID               string
	UsuarioID        string
	TramiteUsuarioID string
	HorarioID        string

	Estado            appointments.Status
	MotivoCancelacion string
	Observaciones     string

	CreadaEn       time.Time
	ReprogramadaEn *time.Time
	CanceladaEn    *time.Time
}

type tramiteUsuarioRecord struct {
	ID            string
	UsuarioID     string
	TramiteCodigo string
	EstadoGeneral string
}

// AppointmentsRepo es el motor de reservas en memoria. Un único mutex
// serializa cada operación compuesta completa, así que los chequeos de
// conflicto y las escrituras que los siguen son atómicos, igual que la
// transacción con FOR UPDATE del adaptador postgres.
type AppointmentsRepo struct {
	mu sync.Mutex

	citas            map[string]citaRecord
	tramitesUsuarios map[string]tramiteUsuarioRecord

	slots     *SlotsRepo
	offerings *OfferingsRepo
}

func NewAppointmentsRepo(slots *SlotsRepo, offerings *OfferingsRepo) *AppointmentsRepo {
	return &AppointmentsRepo{
		citas:            make(map[string]citaRecord),
		tramitesUsuarios: make(map[string]tramiteUsuarioRecord),
		slots:            slots,
		offerings:        offerings,
	}
}

func (r *AppointmentsRepo) Reserve(ctx context.Context, res appointments.Reservation) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	horario := r.slots.findOrCreate(res.Fecha, res.Hora)

	if r.usuarioTieneCitaActiva(res.UsuarioID, horario.ID, "") {
		return appointments.Appointment{}, appointments.ErrAlreadyBooked
	}
	if r.horarioOcupado(horario.ID, "") {
		return appointments.Appointment{}, appointments.ErrSlotOccupied
	}
	if !r.offerings.exists(res.TramiteCodigo) {
		return appointments.Appointment{}, appointments.ErrUnknownOffering
	}

	r.tramitesUsuarios[res.TramiteUsuarioID] = tramiteUsuarioRecord{
		ID:            res.TramiteUsuarioID,
		UsuarioID:     res.UsuarioID,
		TramiteCodigo: res.TramiteCodigo,
		EstadoGeneral: string(appointments.StatusAgendado),
	}
	r.citas[res.CitaID] = citaRecord{
		ID:               res.CitaID,
		UsuarioID:        res.UsuarioID,
		TramiteUsuarioID: res.TramiteUsuarioID,
		HorarioID:        horario.ID,
		Estado:           appointments.StatusAgendado,
		Observaciones:    res.Observaciones,
		CreadaEn:         res.CreadaEn,
	}
	r.slots.setDisponible(horario.ID, false)

	return r.buildAppointment(r.citas[res.CitaID]), nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.citas[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return r.buildAppointment(c), nil
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, usuarioID string) ([]appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]appointments.Appointment, 0)
	for _, c := range r.citas {
		if c.UsuarioID == usuarioID {
			out = append(out, r.buildAppointment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fecha != out[j].Fecha {
			return out[i].Fecha > out[j].Fecha
		}
		return out[i].Hora > out[j].Hora
	})
	return out, nil
}

func (r *AppointmentsRepo) Reschedule(ctx context.Context, id, fecha, hora string, at time.Time) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.citas[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	horarioNuevo := r.slots.findOrCreate(fecha, hora)

	if r.usuarioTieneCitaActiva(c.UsuarioID, horarioNuevo.ID, id) {
		return appointments.Appointment{}, appointments.ErrAlreadyBooked
	}
	if r.horarioOcupado(horarioNuevo.ID, id) {
		return appointments.Appointment{}, appointments.ErrSlotOccupied
	}

	horarioAnterior := c.HorarioID
	c.HorarioID = horarioNuevo.ID
	c.Estado = appointments.StatusAgendado
	t := at
	c.ReprogramadaEn = &t
	r.citas[id] = c

	if horarioAnterior != horarioNuevo.ID {
		r.slots.setDisponible(horarioAnterior, true)
	}
	r.slots.setDisponible(horarioNuevo.ID, false)

	return r.buildAppointment(c), nil
}

func (r *AppointmentsRepo) Cancel(ctx context.Context, id, motivo string, at time.Time) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.citas[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	c.Estado = appointments.StatusCancelado
	c.MotivoCancelacion = motivo
	t := at
	c.CanceladaEn = &t
	r.citas[id] = c

	if tu, ok := r.tramitesUsuarios[c.TramiteUsuarioID]; ok {
		tu.EstadoGeneral = string(appointments.StatusCancelado)
		r.tramitesUsuarios[c.TramiteUsuarioID] = tu
	}
	r.slots.setDisponible(c.HorarioID, true)

	return r.buildAppointment(c), nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.citas[id]
	if !ok {
		return appointments.ErrNotFound
	}
	if !c.Estado.IsTerminal() {
		return appointments.ErrBadState
	}

	r.slots.setDisponible(c.HorarioID, true)
	delete(r.citas, id)

	restantes := 0
	for _, otra := range r.citas {
		if otra.TramiteUsuarioID == c.TramiteUsuarioID {
			restantes++
		}
	}
	if restantes == 0 {
		delete(r.tramitesUsuarios, c.TramiteUsuarioID)
	}
	return nil
}

func (r *AppointmentsRepo) usuarioTieneCitaActiva(usuarioID, horarioID, excluir string) bool {
	for _, c := range r.citas {
		if c.ID != excluir && c.UsuarioID == usuarioID && c.HorarioID == horarioID && c.Estado.IsActive() {
			return true
		}
	}
	return false
}

func (r *AppointmentsRepo) horarioOcupado(horarioID, excluir string) bool {
	for _, c := range r.citas {
		if c.ID != excluir && c.HorarioID == horarioID && c.Estado.IsActive() {
			return true
		}
	}
	return false
}

func (r *AppointmentsRepo) buildAppointment(c citaRecord) appointments.Appointment {
	a := appointments.Appointment{
		ID:                c.ID,
		UsuarioID:         c.UsuarioID,
		TramiteUsuarioID:  c.TramiteUsuarioID,
		HorarioID:         c.HorarioID,
		Estado:            c.Estado,
		MotivoCancelacion: c.MotivoCancelacion,
		Observaciones:     c.Observaciones,
		CreadaEn:          c.CreadaEn,
		ReprogramadaEn:    c.ReprogramadaEn,
		CanceladaEn:       c.CanceladaEn,
	}
	if s, ok := r.slots.get(c.HorarioID); ok {
		a.Fecha = s.Fecha
		a.Hora = s.Hora
	}
	if tu, ok := r.tramitesUsuarios[c.TramiteUsuarioID]; ok {
		a.TramiteCodigo = tu.TramiteCodigo
		if o, err := r.offerings.GetByCode(context.Background(), tu.TramiteCodigo); err == nil {
			a.TramiteNombre = o.Nombre
			a.TramiteDescripcion = o.Descripcion
			a.Precio = o.Precio
		}
	}
	return a
}
