package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store en memoria.
// guarded=false solo dentro del TxRunner, que ya sostiene el lock exclusivo.
type UserRepo struct {
	s       *Store
	guarded bool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s, guarded: true}
}

// Create persiste un nuevo usuario validando unicidad de email y de código
// de proveedor.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
		if user.SupplierCode != "" && u.SupplierCode == user.SupplierCode {
			return domain.ErrDuplicate
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return cloneUser(r.s.users[id]), nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetSupplierByCode resuelve el código público de 6 dígitos.
func (r *UserRepo) GetSupplierByCode(_ context.Context, code string) (*entity.User, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	if code == "" {
		return nil, nil
	}
	for _, u := range r.s.users {
		if u.Role == entity.RoleSupplier && u.SupplierCode == code {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

// List lista usuarios ordenados por fecha de alta descendente.
func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	all := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range all[offset:end] {
		out = append(out, cloneUser(u))
	}
	return out, nil
}
