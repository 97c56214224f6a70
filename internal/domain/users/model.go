package users

import "time"

// Usuario es la entidad de autenticación y contacto. La contraseña solo se
// guarda como hash bcrypt.
type Usuario struct {
	ID string

	NroDocumento    string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	FechaNacimiento string // YYYY-MM-DD

	Correo    string
	Direccion string
	Telefono  string

	ContrasenaHash string

	Estado        string // ACTIVO
	FechaRegistro time.Time
}
