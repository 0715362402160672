package dto

// LoginRequest carries credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the fields for a self-service registration.
// Registration always creates a staff account; the role is not a caller choice.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

// SessionResponse describes the current session for the dashboard.
type SessionResponse struct {
	User UserResponse `json:"user"`
}
