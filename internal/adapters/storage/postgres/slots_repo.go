package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"notaria-citas/internal/domain/slots"

	"github.com/google/uuid"
)

type SlotsRepo struct {
	db *sql.DB
}

func NewSlotsRepo(db *sql.DB) *SlotsRepo {
	return &SlotsRepo{db: db}
}

func (r *SlotsRepo) FindOrCreate(ctx context.Context, fecha, hora string) (slots.Slot, error) {
	// El UNIQUE (fecha, hora) resuelve la carrera entre dos inserciones
	// concurrentes; DO NOTHING + re-select devuelve la fila ganadora.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO horarios_disponibles (id, fecha, hora, capacidad, disponible)
		VALUES ($1, $2, $3, 1, TRUE)
		ON CONFLICT (fecha, hora) DO NOTHING
	`, uuid.NewString(), fecha, hora)
	if err != nil {
		return slots.Slot{}, fmt.Errorf("insert horario: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, fecha, hora, capacidad, disponible, created_at
		FROM horarios_disponibles
		WHERE fecha = $1 AND hora = $2
	`, fecha, hora)

	s, err := scanSlot(row)
	if err != nil {
		return slots.Slot{}, fmt.Errorf("get horario: %w", err)
	}
	return s, nil
}

func (r *SlotsRepo) ListAvailable(ctx context.Context, fecha string) ([]slots.Slot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, fecha, hora, capacidad, disponible, created_at
		FROM horarios_disponibles
		WHERE fecha = $1 AND disponible = TRUE
		ORDER BY hora
	`, fecha)
	if err != nil {
		return nil, fmt.Errorf("list horarios: %w", err)
	}
	defer rows.Close()

	out := make([]slots.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan horario: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSlot(row rowScanner) (slots.Slot, error) {
	var (
		s     slots.Slot
		fecha time.Time
	)
	if err := row.Scan(&s.ID, &fecha, &s.Hora, &s.Capacidad, &s.Disponible, &s.CreadoEn); err != nil {
		return slots.Slot{}, err
	}
	s.Fecha = fecha.Format("2006-01-02")
	return s, nil
}
