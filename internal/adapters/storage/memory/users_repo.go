package memory

import (
	"context"
	"sync"

	"notaria-citas/internal/domain/users"
)

type UsersRepo struct {
	mu   sync.RWMutex
	byID map[string]users.Usuario
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byID: make(map[string]users.Usuario),
	}
}

func (r *UsersRepo) Create(ctx context.Context, u users.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[u.ID] = u
	return nil
}

func (r *UsersRepo) GetByCorreo(ctx context.Context, correo string) (users.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Correo == correo {
			return u, nil
		}
	}
	return users.Usuario{}, users.ErrNotFound
}

func (r *UsersRepo) GetByDocumento(ctx context.Context, nroDocumento string) (users.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.NroDocumento == nroDocumento {
			return u, nil
		}
	}
	return users.Usuario{}, users.ErrNotFound
}
