package memory_test

import (
	"context"
	"testing"

	"github.com/fincontrol/fincontrol_backend/internal/adapters/memory"
	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username string, role domain.UserRole) domain.User {
	return domain.User{
		UserID:   uuid.NewString(),
		Username: username,
		Password: "123",
		FullName: "Test " + username,
		Role:     role,
	}
}

func TestUserRepository_SaveRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.SaveUser(ctx, newUser("alice", domain.RoleStaff)))

	err := repo.SaveUser(ctx, newUser("alice", domain.RoleStaff))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	users, err := repo.FindUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_UsernameMatchIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.SaveUser(ctx, newUser("alice", domain.RoleStaff)))

	// "Alice" is a distinct username, so it neither collides nor resolves.
	require.NoError(t, repo.SaveUser(ctx, newUser("Alice", domain.RoleStaff)))

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindUserByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_FindUsersKeepsRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.SaveUser(ctx, newUser("admin", domain.RoleAdmin)))
	require.NoError(t, repo.SaveUser(ctx, newUser("staff", domain.RoleStaff)))
	require.NoError(t, repo.SaveUser(ctx, newUser("staff2", domain.RoleStaff)))

	users, err := repo.FindUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "staff", users[1].Username)
	assert.Equal(t, "staff2", users[2].Username)
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	user := newUser("doomed", domain.RoleStaff)
	require.NoError(t, repo.SaveUser(ctx, user))
	require.NoError(t, repo.DeleteUser(ctx, user.UserID))

	_, err := repo.FindUserByID(ctx, user.UserID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteUser(ctx, user.UserID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
