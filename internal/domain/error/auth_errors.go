// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidEmail is returned when an email address fails validation.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when a password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrEmailAlreadyExists is returned when registering an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token was supplied.
	ErrMissingToken = errors.New("missing authentication token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-020001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-020002"
	ErrCodeMissingFields AuthErrorCode = "AUTH-020003"

	// Conflict errors (03XXXX)
	ErrCodeEmailExists AuthErrorCode = "AUTH-030001"

	// Authorization errors (04XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-040001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-040002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-040003"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-040004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
