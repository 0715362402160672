package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the single in-process session and, when a user
// is logged in, stores a snapshot of them in the request context and enriches
// the request logger with their identity. Unauthenticated requests pass
// through untouched; endpoint guards decide whether that is acceptable.
func SessionMiddleware(session portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.CurrentUser()
		if user != nil {
			ctx := context.WithValue(c.Request.Context(), currentUserKey, user)

			enrichedLogger := GetLoggerFromCtx(ctx).With(
				slog.String("user_id", user.UserID),
				slog.String("username", user.Username),
			)
			ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequireSession aborts with 401 when no user is logged in.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserFromCtx(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 when unauthenticated and 403 when the session
// user is not an admin. Admin-only services re-check the capability
// themselves; this guard just keeps the rejection at the boundary.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if user.Role != domain.RoleAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Non-admin attempted admin-only endpoint",
				slog.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}
