package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"notaria-citas/internal/domain/offerings"
)

type OfferingsRepo struct {
	db *sql.DB
}

func NewOfferingsRepo(db *sql.DB) *OfferingsRepo {
	return &OfferingsRepo{db: db}
}

const offeringColumns = `codigo, nombre, descripcion, requisitos, precio, duracion_estimada, categoria, activo, creado_en`

func (r *OfferingsRepo) Upsert(ctx context.Context, o offerings.Offering) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tramites (codigo, nombre, descripcion, requisitos, precio, duracion_estimada, categoria, activo, creado_en)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (codigo) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			descripcion = EXCLUDED.descripcion,
			requisitos = EXCLUDED.requisitos,
			precio = EXCLUDED.precio,
			duracion_estimada = EXCLUDED.duracion_estimada,
			categoria = EXCLUDED.categoria,
			activo = EXCLUDED.activo
	`,
		o.Codigo,
		o.Nombre,
		o.Descripcion,
		o.Requisitos,
		o.Precio,
		o.DuracionEstimada,
		o.Categoria,
		o.Activo,
		o.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("upsert tramite: %w", err)
	}
	return nil
}

func (r *OfferingsRepo) ListActive(ctx context.Context) ([]offerings.Offering, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+offeringColumns+`
		FROM tramites
		WHERE activo = TRUE
		ORDER BY nombre
	`)
	if err != nil {
		return nil, fmt.Errorf("list tramites: %w", err)
	}
	defer rows.Close()

	return scanOfferings(rows)
}

func (r *OfferingsRepo) Search(ctx context.Context, query string) ([]offerings.Offering, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+offeringColumns+`
		FROM tramites
		WHERE activo = TRUE
		AND (LOWER(nombre) LIKE LOWER($1) OR LOWER(descripcion) LIKE LOWER($1))
		ORDER BY nombre
	`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search tramites: %w", err)
	}
	defer rows.Close()

	return scanOfferings(rows)
}

func (r *OfferingsRepo) GetByCode(ctx context.Context, codigo string) (offerings.Offering, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+offeringColumns+`
		FROM tramites
		WHERE codigo = $1
	`, codigo)

	o, err := scanOffering(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return offerings.Offering{}, offerings.ErrNotFound
		}
		return offerings.Offering{}, fmt.Errorf("get tramite: %w", err)
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffering(row rowScanner) (offerings.Offering, error) {
	var o offerings.Offering
	err := row.Scan(
		&o.Codigo,
		&o.Nombre,
		&o.Descripcion,
		&o.Requisitos,
		&o.Precio,
		&o.DuracionEstimada,
		&o.Categoria,
		&o.Activo,
		&o.CreadoEn,
	)
	return o, err
}

func scanOfferings(rows *sql.Rows) ([]offerings.Offering, error) {
	out := make([]offerings.Offering, 0)
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tramite: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
