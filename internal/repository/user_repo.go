package repository

import (
	"context"
	"sync"

	"carshop/internal/model"
)

// UserRepository handles storage of registered users
type UserRepository interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type memoryUserRepo struct {
	mu    sync.RWMutex
	users []*model.User
}

// NewMemoryUserRepo creates an in-memory user repository
func NewMemoryUserRepo() UserRepository {
	return &memoryUserRepo{}
}

func (r *memoryUserRepo) Save(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = int64(len(r.users)) + 1
	r.users = append(r.users, user)
	return user, nil
}

func (r *memoryUserRepo) FindAll(_ context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
