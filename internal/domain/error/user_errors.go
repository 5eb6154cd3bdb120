package error

import "errors"

// User profile domain errors.
var (
	// ErrInvalidHeight is returned when the height is outside the plausible range.
	ErrInvalidHeight = errors.New("height out of range")

	// ErrInvalidDateOfBirth is returned when the date of birth is in the future
	// or implausibly old.
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
)

// UserErrorCode defines error codes for user profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Profile errors (01XXXX)
	ErrCodeProfileNotFound    UserErrorCode = "USR-010001"
	ErrCodeInvalidHeight      UserErrorCode = "USR-010002"
	ErrCodeInvalidDateOfBirth UserErrorCode = "USR-010003"
	ErrCodeInvalidEnumValue   UserErrorCode = "USR-010004"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
