// Package memory provides in-memory repository adapters. All state lives in
// the process and resets on restart; the dashboard has no persistence layer.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
)

// UserRepository stores users in registration order.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure UserRepository implements the repository facade
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Username uniqueness is the repository's invariant, the way a database
	// constraint would enforce it. Comparison is case-sensitive.
	for i := range r.users {
		if r.users[i].Username == user.Username {
			return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
		}
	}

	r.users = append(r.users, user)
	return nil
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].UserID == userID {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
}

func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrNotFound)
}

func (r *UserRepository) FindUsers(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserRepository) DeleteUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].UserID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
}
