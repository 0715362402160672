package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
)

// UserService handles user reads and admin-only user administration.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
	audit    portssvc.AuditSvcFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, audit portssvc.AuditSvcFacade) *UserService {
	return &UserService{userRepo: userRepo, audit: audit}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers retrieves all users in registration order.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// DeleteUser removes a user on behalf of an admin. All capability checks run
// before any state changes: the actor must hold the admin role, must not
// target themself, and the protected seed admin account can never be deleted.
// The target's historical transactions and logs are left as-is.
func (s *UserService) DeleteUser(ctx context.Context, targetUserID string, actor *domain.User) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		logger.Warn("Non-admin attempted to delete a user",
			slog.String("actor_id", actor.UserID),
			slog.String("target_id", targetUserID))
		return fmt.Errorf("only admins may delete users: %w", apperrors.ErrForbidden)
	}
	if targetUserID == actor.UserID {
		return fmt.Errorf("cannot delete your own account: %w", apperrors.ErrForbidden)
	}

	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("failed to find user %s: %w", targetUserID, err)
	}
	if target.Username == domain.ProtectedAdminUsername {
		logger.Warn("Attempt to delete protected admin account",
			slog.String("actor_id", actor.UserID))
		return fmt.Errorf("the %q account is protected: %w", domain.ProtectedAdminUsername, apperrors.ErrForbidden)
	}

	if err := s.userRepo.DeleteUser(ctx, targetUserID); err != nil {
		logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("target_id", targetUserID))
		return fmt.Errorf("failed to delete user %s: %w", targetUserID, err)
	}

	details := fmt.Sprintf("Deleted user %s (%s)", target.Username, target.FullName)
	if err := s.audit.Record(ctx, domain.ActionDeleteUser, details, *actor); err != nil {
		return err
	}

	logger.Info("User deleted",
		slog.String("target_id", targetUserID),
		slog.String("target_username", target.Username))
	return nil
}
