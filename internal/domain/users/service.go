package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notaria-citas/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrCorreoEnUso    = errors.New("correo ya registrado")
	ErrDocumentoEnUso = errors.New("documento ya registrado")
	ErrBadCredentials = errors.New("credenciales incorrectas")
	ErrNotFound       = errors.New("not found")
)

const bcryptCost = 10

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
}

type RegisterInput struct {
	NroDocumento    string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	FechaNacimiento string
	Correo          string
	Contrasena      string
	Direccion       string
	Telefono        string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Usuario, error) {
	in.NroDocumento = strings.TrimSpace(in.NroDocumento)
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.ApellidoPaterno = strings.TrimSpace(in.ApellidoPaterno)
	in.ApellidoMaterno = strings.TrimSpace(in.ApellidoMaterno)
	in.Correo = strings.ToLower(strings.TrimSpace(in.Correo))

	if in.NroDocumento == "" || in.Nombre == "" || in.ApellidoPaterno == "" ||
		in.ApellidoMaterno == "" || in.Correo == "" || in.Contrasena == "" {
		return Usuario{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByCorreo(ctx, in.Correo); err == nil {
		return Usuario{}, ErrCorreoEnUso
	} else if !errors.Is(err, ErrNotFound) {
		return Usuario{}, fmt.Errorf("verificar correo: %w", err)
	}

	if _, err := s.repo.GetByDocumento(ctx, in.NroDocumento); err == nil {
		return Usuario{}, ErrDocumentoEnUso
	} else if !errors.Is(err, ErrNotFound) {
		return Usuario{}, fmt.Errorf("verificar documento: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcryptCost)
	if err != nil {
		return Usuario{}, fmt.Errorf("hash contrasena: %w", err)
	}

	fechaNacimiento := strings.TrimSpace(in.FechaNacimiento)
	if fechaNacimiento == "" {
		// El cliente viejo no siempre manda fecha de nacimiento.
		fechaNacimiento = "1990-01-01"
	}

	u := Usuario{
		ID:              uuid.NewString(),
		NroDocumento:    in.NroDocumento,
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		FechaNacimiento: fechaNacimiento,
		Correo:          in.Correo,
		Direccion:       strings.TrimSpace(in.Direccion),
		Telefono:        strings.TrimSpace(in.Telefono),
		ContrasenaHash:  string(hash),
		Estado:          "ACTIVO",
		FechaRegistro:   s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return Usuario{}, err
	}
	return u, nil
}

// Login verifica credenciales y emite un token firmado.
func (s *Service) Login(ctx context.Context, correo, contrasena string) (string, Usuario, error) {
	correo = strings.ToLower(strings.TrimSpace(correo))
	if correo == "" || contrasena == "" {
		return "", Usuario{}, ErrInvalidInput
	}

	u, err := s.repo.GetByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", Usuario{}, ErrBadCredentials
		}
		return "", Usuario{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(contrasena)); err != nil {
		return "", Usuario{}, ErrBadCredentials
	}

	token, err := s.issuer.Issue(u.ID, u.Correo)
	if err != nil {
		return "", Usuario{}, fmt.Errorf("emitir token: %w", err)
	}
	return token, u, nil
}
