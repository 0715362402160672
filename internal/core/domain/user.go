package domain

import "time"

// UserRole determines what a user is allowed to do.
type UserRole string

const (
	// RoleAdmin grants full access, including user administration.
	RoleAdmin UserRole = "admin"
	// RoleStaff grants transaction bookkeeping only.
	RoleStaff UserRole = "staff"
)

// ProtectedAdminUsername is the seed super-admin account. It can never be
// deleted, not even by another admin.
const ProtectedAdminUsername = "admin"

// User represents an account that can sign in to the dashboard.
type User struct {
	UserID string `json:"userID"` // Primary Key (UUID)
	// Username is unique across all live users; comparison is case-sensitive.
	Username string `json:"username"`
	// Password holds the stored credential. With the plaintext verifier this
	// is the raw password (demo-grade, preserved behavior); with the bcrypt
	// verifier it is a hash. Never serialized.
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
