package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"notaria-citas/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
	})
}

type registerRequest struct {
	NroDocumento    string `json:"nro_documento"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Correo          string `json:"correo"`
	Contrasena      string `json:"contrasena"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
}

// usuarioResponse usa los nombres camelCase que espera el cliente móvil.
type usuarioResponse struct {
	ID              string    `json:"id"`
	NroDocumento    string    `json:"nroDocumento"`
	Nombres         string    `json:"nombres"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno string    `json:"apellidoMaterno"`
	Correo          string    `json:"correo"`
	Direccion       string    `json:"direccion"`
	Telefono        string    `json:"telefono"`
	Estado          string    `json:"estado"`
	FechaRegistro   time.Time `json:"fechaRegistro"`
}

// registerHandler godoc
// @Summary Registro de usuario
// @Accept json
// @Produce json
// @Success 201 {object} httpjson.Envelope
// @Failure 400 {object} httpjson.Envelope
// @Failure 409 {object} httpjson.Envelope
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			NroDocumento:    req.NroDocumento,
			Nombre:          req.Nombre,
			ApellidoPaterno: req.ApellidoPaterno,
			ApellidoMaterno: req.ApellidoMaterno,
			FechaNacimiento: req.FechaNacimiento,
			Correo:          req.Correo,
			Contrasena:      req.Contrasena,
			Direccion:       req.Direccion,
			Telefono:        req.Telefono,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Fail(w, http.StatusBadRequest, "Todos los campos obligatorios deben estar completos")
			case errors.Is(err, ErrCorreoEnUso):
				httpjson.Fail(w, http.StatusConflict, "El correo ya está registrado")
			case errors.Is(err, ErrDocumentoEnUso):
				httpjson.Fail(w, http.StatusConflict, "El número de documento ya está registrado")
			default:
				httpjson.FailErr(w, http.StatusInternalServerError, "Error al registrar usuario", err)
			}
			return
		}

		httpjson.OK(w, http.StatusCreated, "Usuario registrado exitosamente", toUsuarioResponse(u))
	}
}

type loginRequest struct {
	Correo     string `json:"correo"`
	Password   string `json:"password"`
	Contrasena string `json:"contrasena"`
}

// loginResponse replica el formato del backend original: token y usuario van
// al tope del sobre, no dentro de data.
type loginResponse struct {
	Success bool            `json:"success"`
	Mensaje string          `json:"mensaje"`
	Token   string          `json:"token"`
	Usuario usuarioResponse `json:"usuario"`
}

// loginHandler godoc
// @Summary Login de usuario
// @Accept json
// @Produce json
// @Success 200 {object} loginResponse
// @Failure 401 {object} httpjson.Envelope
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		// Se acepta tanto "password" como "contrasena".
		contrasena := req.Password
		if contrasena == "" {
			contrasena = req.Contrasena
		}

		token, u, err := svc.Login(r.Context(), req.Correo, contrasena)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpjson.Fail(w, http.StatusBadRequest, "Correo y contraseña son obligatorios")
			case errors.Is(err, ErrBadCredentials):
				httpjson.Fail(w, http.StatusUnauthorized, "Credenciales incorrectas")
			default:
				httpjson.FailErr(w, http.StatusInternalServerError, "Error al iniciar sesión", err)
			}
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{
			Success: true,
			Mensaje: "Login exitoso",
			Token:   token,
			Usuario: toUsuarioResponse(u),
		})
	}
}

func toUsuarioResponse(u Usuario) usuarioResponse {
	return usuarioResponse{
		ID:              u.ID,
		NroDocumento:    u.NroDocumento,
		Nombres:         u.Nombre,
		ApellidoPaterno: u.ApellidoPaterno,
		ApellidoMaterno: u.ApellidoMaterno,
		Correo:          u.Correo,
		Direccion:       u.Direccion,
		Telefono:        u.Telefono,
		Estado:          u.Estado,
		FechaRegistro:   u.FechaRegistro,
	}
}
