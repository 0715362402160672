package middleware

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// currentUserKey is the key used to store the session's user in the request
// context.
const currentUserKey = contextKey("currentUser")

// GetUserFromCtx retrieves the acting user placed in the context by the
// session middleware. It returns nil and false when the request is
// unauthenticated.
func GetUserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
