package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/google/uuid"
)

// AuthService handles login, registration and logout against the single
// in-process session.
type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	session  portssvc.SessionSvcFacade
	audit    portssvc.AuditSvcFacade
	verifier portssvc.CredentialVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	session portssvc.SessionSvcFacade,
	audit portssvc.AuditSvcFacade,
	verifier portssvc.CredentialVerifier,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		session:  session,
		audit:    audit,
		verifier: verifier,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login authenticates a user by exact username and credential match. The
// failure result is identical for unknown usernames and wrong passwords.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !s.verifier.Verify(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.session.SetCurrentUser(*user)

	if err := s.audit.Record(ctx, domain.ActionLogin, fmt.Sprintf("User %s logged in", user.Username), *user); err != nil {
		return nil, err
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return user, nil
}

// Register creates a new staff account and signs it in. Registration can
// never create an admin.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check username availability", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q is already taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	stored, err := s.verifier.Prepare(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare credential: %w", err)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Username:  req.Username,
		Password:  stored,
		FullName:  req.FullName,
		Role:      domain.RoleStaff,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save new user", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.session.SetCurrentUser(user)

	if err := s.audit.Record(ctx, domain.ActionRegister, fmt.Sprintf("New account registered for %s (%s)", user.Username, user.FullName), user); err != nil {
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

// Logout ends the current session. Already being logged out is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	current := s.session.CurrentUser()
	if current == nil {
		return nil
	}

	// The entry is attributed to the outgoing user, recorded before the
	// session is cleared.
	if err := s.audit.Record(ctx, domain.ActionLogout, fmt.Sprintf("User %s logged out", current.Username), *current); err != nil {
		return err
	}
	s.session.ClearCurrentUser()

	middleware.GetLoggerFromCtx(ctx).Info("User logged out", slog.String("username", current.Username))
	return nil
}
