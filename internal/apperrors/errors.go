package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a failed login attempt. The message is
// deliberately generic: callers must not reveal whether the username or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUnauthorized indicates that an operation requires an authenticated session.
var ErrUnauthorized = errors.New("authentication required")

// ErrForbidden indicates that the acting user lacks the capability for an
// operation (admin-only actions, protected accounts, self-deletion).
var ErrForbidden = errors.New("operation not allowed")
