package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"notaria-citas/internal/domain/appointments"

	"github.com/google/uuid"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const citaJoinQuery = `
	SELECT c.id, c.usuario_id, tu.tramite_codigo, c.tramite_usuario_id, c.horario_id,
	       hd.fecha, hd.hora, c.estado, c.motivo_cancelacion, c.observaciones,
	       c.creada_en, c.reprogramada_en, c.cancelada_en,
	       t.nombre, t.descripcion, t.precio
	FROM citas c
	JOIN horarios_disponibles hd ON hd.id = c.horario_id
	JOIN tramites_usuarios tu ON tu.id = c.tramite_usuario_id
	JOIN tramites t ON t.codigo = tu.tramite_codigo
`

// Reserve ejecuta la reserva completa en una transacción. El horario se
// bloquea con FOR UPDATE antes de los chequeos de conflicto, de modo que dos
// reservas concurrentes sobre el mismo (fecha, hora) quedan serializadas y
// solo una puede pasar el chequeo de ocupación.
func (r *AppointmentsRepo) Reserve(ctx context.Context, res appointments.Reservation) (appointments.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	horarioID, err := lockOrCreateSlot(ctx, tx, res.Fecha, res.Hora)
	if err != nil {
		return appointments.Appointment{}, err
	}

	// Chequeo propio primero: re-reservar el mismo horario da un error más
	// específico que "ocupado".
	var tiene bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE usuario_id = $1 AND horario_id = $2
			AND estado IN ('AGENDADO', 'EN_PROCESO')
		)
	`, res.UsuarioID, horarioID).Scan(&tiene)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("check cita propia: %w", err)
	}
	if tiene {
		return appointments.Appointment{}, appointments.ErrAlreadyBooked
	}

	var ocupado bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE horario_id = $1
			AND estado IN ('AGENDADO', 'EN_PROCESO')
		)
	`, horarioID).Scan(&ocupado)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("check horario ocupado: %w", err)
	}
	if ocupado {
		return appointments.Appointment{}, appointments.ErrSlotOccupied
	}

	var existeTramite bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM tramites WHERE codigo = $1)`,
		res.TramiteCodigo,
	).Scan(&existeTramite)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("check tramite: %w", err)
	}
	if !existeTramite {
		return appointments.Appointment{}, appointments.ErrUnknownOffering
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tramites_usuarios (id, usuario_id, tramite_codigo, estado_general, creada_en)
		VALUES ($1, $2, $3, 'AGENDADO', $4)
	`, res.TramiteUsuarioID, res.UsuarioID, res.TramiteCodigo, res.CreadaEn)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("insert tramite_usuario: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO citas (id, usuario_id, tramite_usuario_id, horario_id, estado, observaciones, creada_en)
		VALUES ($1, $2, $3, $4, 'AGENDADO', $5, $6)
	`, res.CitaID, res.UsuarioID, res.TramiteUsuarioID, horarioID, res.Observaciones, res.CreadaEn)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("insert cita: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE horarios_disponibles SET disponible = FALSE WHERE id = $1`,
		horarioID,
	)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("bloquear horario: %w", err)
	}

	cita, err := getCitaTx(ctx, tx, res.CitaID)
	if err != nil {
		return appointments.Appointment{}, err
	}

	if err := tx.Commit(); err != nil {
		return appointments.Appointment{}, fmt.Errorf("commit reserva: %w", err)
	}
	return cita, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, citaJoinQuery+` WHERE c.id = $1`, id)
	cita, err := scanCita(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, fmt.Errorf("get cita: %w", err)
	}
	return cita, nil
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, usuarioID string) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		citaJoinQuery+` WHERE c.usuario_id = $1 ORDER BY hd.fecha DESC, hd.hora DESC`,
		usuarioID,
	)
	if err != nil {
		return nil, fmt.Errorf("list citas: %w", err)
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		cita, err := scanCita(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cita: %w", err)
		}
		out = append(out, cita)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) Reschedule(ctx context.Context, id, fecha, hora string, at time.Time) (appointments.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		horarioAnterior string
		usuarioID       string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT horario_id, usuario_id FROM citas WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&horarioAnterior, &usuarioID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, fmt.Errorf("get cita: %w", err)
	}

	horarioNuevo, err := lockOrCreateSlot(ctx, tx, fecha, hora)
	if err != nil {
		return appointments.Appointment{}, err
	}

	// Mismos chequeos que en la reserva, excluyendo esta cita.
	var tiene bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE usuario_id = $1 AND horario_id = $2 AND id <> $3
			AND estado IN ('AGENDADO', 'EN_PROCESO')
		)
	`, usuarioID, horarioNuevo, id).Scan(&tiene)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("check cita propia: %w", err)
	}
	if tiene {
		return appointments.Appointment{}, appointments.ErrAlreadyBooked
	}

	var ocupado bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE horario_id = $1 AND id <> $2
			AND estado IN ('AGENDADO', 'EN_PROCESO')
		)
	`, horarioNuevo, id).Scan(&ocupado)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("check horario ocupado: %w", err)
	}
	if ocupado {
		return appointments.Appointment{}, appointments.ErrSlotOccupied
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE citas
		SET horario_id = $1, estado = 'AGENDADO', reprogramada_en = $2
		WHERE id = $3
	`, horarioNuevo, at, id)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("update cita: %w", err)
	}

	if horarioAnterior != horarioNuevo {
		_, err = tx.ExecContext(ctx,
			`UPDATE horarios_disponibles SET disponible = TRUE WHERE id = $1`,
			horarioAnterior,
		)
		if err != nil {
			return appointments.Appointment{}, fmt.Errorf("liberar horario anterior: %w", err)
		}
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE horarios_disponibles SET disponible = FALSE WHERE id = $1`,
		horarioNuevo,
	)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("bloquear horario nuevo: %w", err)
	}

	cita, err := getCitaTx(ctx, tx, id)
	if err != nil {
		return appointments.Appointment{}, err
	}

	if err := tx.Commit(); err != nil {
		return appointments.Appointment{}, fmt.Errorf("commit reprogramacion: %w", err)
	}
	return cita, nil
}

func (r *AppointmentsRepo) Cancel(ctx context.Context, id, motivo string, at time.Time) (appointments.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var horarioID, tramiteUsuarioID string
	err = tx.QueryRowContext(ctx,
		`SELECT horario_id, tramite_usuario_id FROM citas WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&horarioID, &tramiteUsuarioID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, fmt.Errorf("get cita: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE citas
		SET estado = 'CANCELADO', motivo_cancelacion = $1, cancelada_en = $2
		WHERE id = $3
	`, motivo, at, id)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("cancelar cita: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE tramites_usuarios SET estado_general = 'CANCELADO' WHERE id = $1`,
		tramiteUsuarioID,
	)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("cancelar tramite_usuario: %w", err)
	}

	// Liberar incondicionalmente es correcto: como máximo una cita activa
	// sostiene un horario a la vez.
	_, err = tx.ExecContext(ctx,
		`UPDATE horarios_disponibles SET disponible = TRUE WHERE id = $1`,
		horarioID,
	)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("liberar horario: %w", err)
	}

	cita, err := getCitaTx(ctx, tx, id)
	if err != nil {
		return appointments.Appointment{}, err
	}

	if err := tx.Commit(); err != nil {
		return appointments.Appointment{}, fmt.Errorf("commit cancelacion: %w", err)
	}
	return cita, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		horarioID        string
		tramiteUsuarioID string
		estado           string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT horario_id, tramite_usuario_id, estado FROM citas WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&horarioID, &tramiteUsuarioID, &estado)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.ErrNotFound
		}
		return fmt.Errorf("get cita: %w", err)
	}

	if !appointments.Status(estado).IsTerminal() {
		return appointments.ErrBadState
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE horarios_disponibles SET disponible = TRUE WHERE id = $1`,
		horarioID,
	)
	if err != nil {
		return fmt.Errorf("liberar horario: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM citas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cita: %w", err)
	}

	// Limpieza en cascada: el tramite_usuario se va con su última cita.
	var restantes int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM citas WHERE tramite_usuario_id = $1`,
		tramiteUsuarioID,
	).Scan(&restantes)
	if err != nil {
		return fmt.Errorf("contar citas restantes: %w", err)
	}
	if restantes == 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM tramites_usuarios WHERE id = $1`, tramiteUsuarioID,
		); err != nil {
			return fmt.Errorf("delete tramite_usuario: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit eliminacion: %w", err)
	}
	return nil
}

// lockOrCreateSlot resuelve el horario (fecha, hora) dentro de la transacción
// y lo deja bloqueado (FOR UPDATE) para serializar reservas concurrentes.
func lockOrCreateSlot(ctx context.Context, tx *sql.Tx, fecha, hora string) (string, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO horarios_disponibles (id, fecha, hora, capacidad, disponible)
		VALUES ($1, $2, $3, 1, TRUE)
		ON CONFLICT (fecha, hora) DO NOTHING
	`, uuid.NewString(), fecha, hora)
	if err != nil {
		return "", fmt.Errorf("insert horario: %w", err)
	}

	var id string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM horarios_disponibles WHERE fecha = $1 AND hora = $2 FOR UPDATE`,
		fecha, hora,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("lock horario: %w", err)
	}
	return id, nil
}

func getCitaTx(ctx context.Context, tx *sql.Tx, id string) (appointments.Appointment, error) {
	row := tx.QueryRowContext(ctx, citaJoinQuery+` WHERE c.id = $1`, id)
	cita, err := scanCita(row)
	if err != nil {
		return appointments.Appointment{}, fmt.Errorf("get cita completa: %w", err)
	}
	return cita, nil
}

func scanCita(row rowScanner) (appointments.Appointment, error) {
	var (
		c              appointments.Appointment
		fecha          time.Time
		reprogramadaEn sql.NullTime
		canceladaEn    sql.NullTime
	)
	err := row.Scan(
		&c.ID,
		&c.UsuarioID,
		&c.TramiteCodigo,
		&c.TramiteUsuarioID,
		&c.HorarioID,
		&fecha,
		&c.Hora,
		&c.Estado,
		&c.MotivoCancelacion,
		&c.Observaciones,
		&c.CreadaEn,
		&reprogramadaEn,
		&canceladaEn,
		&c.TramiteNombre,
		&c.TramiteDescripcion,
		&c.Precio,
	)
	if err != nil {
		return appointments.Appointment{}, err
	}

	c.Fecha = fecha.Format("2006-01-02")
	if reprogramadaEn.Valid {
		t := reprogramadaEn.Time
		c.ReprogramadaEn = &t
	}
	if canceladaEn.Valid {
		t := canceladaEn.Time
		c.CanceladaEn = &t
	}
	return c, nil
}
