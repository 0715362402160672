package services

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users in registration order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserLifecycleSvc defines admin-only user administration.
type UserLifecycleSvc interface {
	// DeleteUser removes a user on behalf of an admin. The capability check
	// lives here, not at the call site: non-admin actors, self-deletion and
	// the protected "admin" account are all rejected with
	// apperrors.ErrForbidden before any state changes. Historical
	// transactions and logs of the deleted user are left orphaned.
	DeleteUser(ctx context.Context, targetUserID string, actor *domain.User) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserLifecycleSvc
}
