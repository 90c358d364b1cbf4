// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Email delivery errors.
var (
	// ErrEmailSendFailed is returned when an email could not be delivered.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrInvalidTemplate is returned when a job references an unknown template.
	ErrInvalidTemplate = errors.New("invalid email template")
)

// EmailErrorCode defines error codes for email errors.
type EmailErrorCode string

const (
	// ErrCodeTemporaryEmailFailure marks a failure worth retrying.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010001"
	// ErrCodePermanentEmailFailure marks a failure that must not be retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010002"
	// ErrCodeEmailQueueFailed marks a failure to enqueue a job.
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-020001"
	// ErrCodeInvalidTemplate marks a job with an unknown template type.
	ErrCodeInvalidTemplate EmailErrorCode = "EML-020002"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether the failure must not be retried.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
