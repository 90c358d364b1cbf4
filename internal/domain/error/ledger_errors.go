// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Errors shared by the family-scoped ledger entities (categories, tags,
// transactions, budgets).
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNameRequired is returned when a required name field is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidTransactionType is returned for a type outside {income, expense}.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidBudgetPeriod is returned for a period outside {weekly, monthly, yearly}.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrNegativeAmount is returned when an amount magnitude is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidDate is returned when a date fails to parse.
	ErrInvalidDate = errors.New("invalid date")

	// ErrCrossFamilyReference is returned when an entity references a record
	// owned by a different family.
	ErrCrossFamilyReference = errors.New("referenced record belongs to another family")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeCategoryNotFound    LedgerErrorCode = "LGR-010001"
	ErrCodeTagNotFound         LedgerErrorCode = "LGR-010002"
	ErrCodeTransactionNotFound LedgerErrorCode = "LGR-010003"
	ErrCodeBudgetNotFound      LedgerErrorCode = "LGR-010004"

	// Validation errors (02XXXX)
	ErrCodeNameRequired           LedgerErrorCode = "LGR-020001"
	ErrCodeInvalidTransactionType LedgerErrorCode = "LGR-020002"
	ErrCodeInvalidBudgetPeriod    LedgerErrorCode = "LGR-020003"
	ErrCodeNegativeAmount         LedgerErrorCode = "LGR-020004"
	ErrCodeInvalidDate            LedgerErrorCode = "LGR-020005"

	// Conflict errors (03XXXX)
	ErrCodeCrossFamilyReference LedgerErrorCode = "LGR-030001"

	// Authorization errors (04XXXX)
	ErrCodeNotAuthorized LedgerErrorCode = "LGR-040001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
