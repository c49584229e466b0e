package memory

import (
	"context"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[model.UserID]*model.User
	order []model.UserID
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[model.UserID]*model.User),
	}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return nil, goerr.New("user ID is required")
	}
	if _, exists := r.users[u.ID]; exists {
		return nil, goerr.Wrap(model.ErrAlreadyExists, "user already exists", goerr.V(model.UserIDKey, u.ID))
	}

	created := copyUser(u)
	r.users[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyUser(created), nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "user not found", goerr.V(model.UserIDKey, id))
	}
	return copyUser(u), nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Phone == phone {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepository) List(ctx context.Context, role types.UserRole) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0)
	for _, id := range r.order {
		if u := r.users[id]; u.Role == role {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}
