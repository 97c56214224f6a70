package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"notaria-citas/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.Usuario) error {
	var fechaNacimiento any
	if u.FechaNacimiento != "" {
		fechaNacimiento = u.FechaNacimiento
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO usuarios (id, nro_documento, nombre, apellido_paterno, apellido_materno,
		                      fecha_nacimiento, correo, direccion, telefono, contrasena,
		                      estado, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, u.ID, u.NroDocumento, u.Nombre, u.ApellidoPaterno, u.ApellidoMaterno,
		fechaNacimiento, u.Correo, u.Direccion, u.Telefono, u.ContrasenaHash,
		u.Estado, u.FechaRegistro)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsersRepo) GetByCorreo(ctx context.Context, correo string) (users.Usuario, error) {
	return r.getBy(ctx, "correo", correo)
}

func (r *UsersRepo) GetByDocumento(ctx context.Context, nroDocumento string) (users.Usuario, error) {
	return r.getBy(ctx, "nro_documento", nroDocumento)
}

func (r *UsersRepo) getBy(ctx context.Context, col, val string) (users.Usuario, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nro_documento, nombre, apellido_paterno, apellido_materno,
		       fecha_nacimiento, correo, direccion, telefono, contrasena,
		       estado, fecha_registro
		FROM usuarios WHERE `+col+` = $1
	`, val)

	var (
		u               users.Usuario
		fechaNacimiento sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.NroDocumento,
		&u.Nombre,
		&u.ApellidoPaterno,
		&u.ApellidoMaterno,
		&fechaNacimiento,
		&u.Correo,
		&u.Direccion,
		&u.Telefono,
		&u.ContrasenaHash,
		&u.Estado,
		&u.FechaRegistro,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.Usuario{}, users.ErrNotFound
		}
		return users.Usuario{}, fmt.Errorf("get usuario: %w", err)
	}
	if fechaNacimiento.Valid {
		u.FechaNacimiento = fechaNacimiento.Time.Format("2006-01-02")
	}
	return u, nil
}
