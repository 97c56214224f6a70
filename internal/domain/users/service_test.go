package users

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Usuario
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Usuario{}}
}

func (r *testRepo) Create(ctx context.Context, u Usuario) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByCorreo(ctx context.Context, correo string) (Usuario, error) {
	for _, u := range r.byID {
		if u.Correo == correo {
			return u, nil
		}
	}
	return Usuario{}, ErrNotFound
}

func (r *testRepo) GetByDocumento(ctx context.Context, nroDocumento string) (Usuario, error) {
	for _, u := range r.byID {
		if u.NroDocumento == nroDocumento {
			return u, nil
		}
	}
	return Usuario{}, ErrNotFound
}

type testIssuer struct {
	lastUserID string
	lastCorreo string
}

func (i *testIssuer) Issue(userID, correo string) (string, error) {
	i.lastUserID = userID
	i.lastCorreo = correo
	return "token-" + userID, nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		NroDocumento:    "12345678",
		Nombre:          "Maria",
		ApellidoPaterno: "Lopez",
		ApellidoMaterno: "Quispe",
		Correo:          "Maria@Example.com",
		Contrasena:      "secreta123",
		Direccion:       "Av. Siempre Viva 123",
		Telefono:        "987654321",
	}
}

func TestService_Register_HashesPasswordAndDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testIssuer{})

	now := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	u, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Correo != "maria@example.com" {
		t.Fatalf("expected correo en minusculas, got %q", u.Correo)
	}
	if u.ContrasenaHash == "" || u.ContrasenaHash == "secreta123" {
		t.Fatalf("la contrasena no quedo hasheada")
	}
	if u.Estado != "ACTIVO" {
		t.Fatalf("expected estado ACTIVO, got %q", u.Estado)
	}
	if u.FechaNacimiento != "1990-01-01" {
		t.Fatalf("expected fecha de nacimiento por defecto, got %q", u.FechaNacimiento)
	}
	if !u.FechaRegistro.Equal(now) {
		t.Fatalf("expected FechaRegistro = now fijo, got %v", u.FechaRegistro)
	}
}

func TestService_Register_RequiresMandatoryFields(t *testing.T) {
	svc := NewService(newTestRepo(), &testIssuer{})

	in := validRegisterInput()
	in.Correo = "  "
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_DuplicateCorreoAndDocumento(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testIssuer{})

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("primer registro: %v", err)
	}

	if _, err := svc.Register(context.Background(), validRegisterInput()); !errors.Is(err, ErrCorreoEnUso) {
		t.Fatalf("expected ErrCorreoEnUso, got %v", err)
	}

	in := validRegisterInput()
	in.Correo = "otra@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrDocumentoEnUso) {
		t.Fatalf("expected ErrDocumentoEnUso, got %v", err)
	}
}

func TestService_Login_IssuesToken(t *testing.T) {
	repo := newTestRepo()
	issuer := &testIssuer{}
	svc := NewService(repo, issuer)

	u, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, got, err := svc.Login(context.Background(), "MARIA@example.com", "secreta123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "token-"+u.ID {
		t.Fatalf("unexpected token %q", token)
	}
	if issuer.lastCorreo != "maria@example.com" {
		t.Fatalf("unexpected correo en claims %q", issuer.lastCorreo)
	}
	if got.ID != u.ID {
		t.Fatalf("unexpected usuario %+v", got)
	}
}

func TestService_Login_BadCredentials(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testIssuer{})

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "maria@example.com", "incorrecta"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nadie@example.com", "secreta123"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials para correo inexistente, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", "secreta123"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
