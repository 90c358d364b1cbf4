// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Family domain errors.
var (
	// ErrFamilyNotFound is returned when a family is not found.
	ErrFamilyNotFound = errors.New("family not found")

	// ErrFamilyNameRequired is returned when the family name is empty.
	ErrFamilyNameRequired = errors.New("family name is required")

	// ErrFamilyNameTooLong is returned when the family name exceeds the maximum length.
	ErrFamilyNameTooLong = errors.New("family name too long")

	// ErrMemberNotFound is returned when a member is not found in the family.
	ErrMemberNotFound = errors.New("member not found")

	// ErrNotFamilyOwner is returned when a non-owner tries to perform owner actions.
	ErrNotFamilyOwner = errors.New("only the family owner can perform this action")

	// ErrNotFamilyMember is returned when a user is not part of the family.
	ErrNotFamilyMember = errors.New("user is not part of this family")

	// ErrUserAlreadyMember is returned when a user is already a member.
	ErrUserAlreadyMember = errors.New("user is already a member of this family")

	// ErrInviteNotFound is returned when an invitation is not found.
	ErrInviteNotFound = errors.New("invite not found")

	// ErrInviteExpired is returned when an invitation has expired.
	ErrInviteExpired = errors.New("invite has expired")

	// ErrInviteAlreadyExists is returned when a pending invite already exists for the email.
	ErrInviteAlreadyExists = errors.New("invite already exists for this email")

	// ErrCannotInviteSelf is returned when a user tries to invite themselves.
	ErrCannotInviteSelf = errors.New("cannot invite yourself")

	// ErrOwnerCannotLeave is returned when the owner tries to leave their own family.
	ErrOwnerCannotLeave = errors.New("the owner cannot leave the family")

	// ErrInvalidFamilyEmail is returned when an invalid email is provided.
	ErrInvalidFamilyEmail = errors.New("invalid email address")

	// ErrNoActiveFamily is returned when a family-scoped operation has no
	// resolved family context.
	ErrNoActiveFamily = errors.New("no active family selected")
)

// FamilyErrorCode defines error codes for family errors.
// Format: FAM-XXYYYY where XX is category and YYYY is specific error.
type FamilyErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeFamilyNotFound FamilyErrorCode = "FAM-010001"
	ErrCodeMemberNotFound FamilyErrorCode = "FAM-010002"
	ErrCodeInviteNotFound FamilyErrorCode = "FAM-010003"

	// Validation errors (02XXXX)
	ErrCodeFamilyNameRequired FamilyErrorCode = "FAM-020001"
	ErrCodeFamilyNameTooLong  FamilyErrorCode = "FAM-020002"
	ErrCodeInvalidFamilyEmail FamilyErrorCode = "FAM-020003"

	// Conflict errors (03XXXX)
	ErrCodeUserAlreadyMember   FamilyErrorCode = "FAM-030001"
	ErrCodeInviteAlreadyExists FamilyErrorCode = "FAM-030002"

	// Authorization errors (04XXXX)
	ErrCodeNotFamilyOwner  FamilyErrorCode = "FAM-040001"
	ErrCodeNotFamilyMember FamilyErrorCode = "FAM-040002"
	ErrCodeNoActiveFamily  FamilyErrorCode = "FAM-040003"

	// Invite errors (05XXXX)
	ErrCodeInviteExpired    FamilyErrorCode = "FAM-050001"
	ErrCodeCannotInviteSelf FamilyErrorCode = "FAM-050002"

	// Business logic errors (06XXXX)
	ErrCodeOwnerCannotLeave FamilyErrorCode = "FAM-060001"
)

// FamilyError represents a family error with code and message.
type FamilyError struct {
	Code    FamilyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FamilyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FamilyError) Unwrap() error {
	return e.Err
}

// NewFamilyError creates a new FamilyError with the given code and message.
func NewFamilyError(code FamilyErrorCode, message string, err error) *FamilyError {
	return &FamilyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
