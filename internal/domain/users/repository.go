package users

import "context"

type Repository interface {
	Create(ctx context.Context, u Usuario) error
	GetByCorreo(ctx context.Context, correo string) (Usuario, error)
	GetByDocumento(ctx context.Context, nroDocumento string) (Usuario, error)
}
