package services

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
)

// CredentialVerifier isolates the credential check so the storage format can
// change (plaintext today, bcrypt behind the same seam) without touching the
// store contract.
type CredentialVerifier interface {
	// Prepare transforms a raw password into its stored form.
	Prepare(password string) (string, error)

	// Verify reports whether a raw password matches the stored credential.
	Verify(password, stored string) bool
}

// AuthSvcFacade handles login, registration and logout for the single
// in-process session.
type AuthSvcFacade interface {
	// Login authenticates with exact, case-sensitive credentials. On success
	// the session is switched to the user and a LOGIN entry is recorded.
	// Failure returns apperrors.ErrInvalidCredentials with no state change.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// Register creates a new staff user, makes it the current session and
	// records a REGISTER entry. A taken username returns
	// apperrors.ErrDuplicate and leaves the store untouched.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Logout records a LOGOUT entry attributed to the outgoing user, then
	// clears the session. No-op when already logged out.
	Logout(ctx context.Context) error
}

// SessionSvcFacade owns the single current session: exactly one authenticated
// user per running instance, or none. Not persisted; a restart starts
// unauthenticated.
type SessionSvcFacade interface {
	// CurrentUser returns a snapshot of the authenticated user, or nil.
	CurrentUser() *domain.User

	// SetCurrentUser switches the session to the given user.
	SetCurrentUser(user domain.User)

	// ClearCurrentUser ends the session and returns the outgoing user, or
	// nil if there was none.
	ClearCurrentUser() *domain.User
}
