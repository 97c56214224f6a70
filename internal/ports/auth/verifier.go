package auth

import "context"

// AuthVerifier verifica un token bearer y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para un usuario autenticado (login).
type TokenIssuer interface {
	Issue(userID, correo string) (string, error)
}
