// Package error defines domain-specific errors for the LifePlan application.
package error

import "errors"

// Ledger and persistence domain errors.
var (
	// ErrStoreUnreachable is returned when the configured state backend cannot
	// be reached. Callers must not substitute seed state for this error: "no
	// data yet" and "could not reach storage" are different outcomes.
	ErrStoreUnreachable = errors.New("state store unreachable")

	// ErrStateSerialization is returned when a ledger state cannot be
	// serialized or deserialized for storage.
	ErrStateSerialization = errors.New("ledger state serialization failed")

	// ErrSessionNotFound is returned when a ledger operation targets a user
	// without a hydrated session.
	ErrSessionNotFound = errors.New("no active session for user")

	// ErrInvalidGoalTarget is returned when a goal is created with a
	// non-positive target amount.
	ErrInvalidGoalTarget = errors.New("goal target must be positive")

	// ErrInvalidRisk is returned when an institution risk is outside 1..5.
	ErrInvalidRisk = errors.New("institution risk must be between 1 and 5")
)

// LedgerErrorCode defines error codes for ledger and persistence errors.
type LedgerErrorCode string

const (
	// Persistence errors (01XXXX)
	ErrCodeStoreUnreachable   LedgerErrorCode = "LEDGER-010001"
	ErrCodeStateSerialization LedgerErrorCode = "LEDGER-010002"

	// Session errors (02XXXX)
	ErrCodeSessionNotFound LedgerErrorCode = "LEDGER-020001"

	// Validation errors (03XXXX)
	ErrCodeInvalidGoalTarget LedgerErrorCode = "LEDGER-030001"
	ErrCodeInvalidRisk       LedgerErrorCode = "LEDGER-030002"
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
