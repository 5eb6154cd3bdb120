package error

import "errors"

// Progress domain errors.
var (
	// ErrTooSoon is returned when a progress entry is logged before the 7-day
	// cadence allows.
	ErrTooSoon = errors.New("too soon since last check-in")

	// ErrMeasurementAlreadyLogged is returned when the measurement already
	// backs a progress entry.
	ErrMeasurementAlreadyLogged = errors.New("measurement already logged as progress")

	// ErrMeasurementPredatesGoal is returned when the measurement was taken
	// before the goal started.
	ErrMeasurementPredatesGoal = errors.New("measurement predates the goal")
)

// ProgressErrorCode defines error codes for progress errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Logging errors (01XXXX)
	ErrCodeTooSoon                  ProgressErrorCode = "PRG-010001"
	ErrCodeMeasurementAlreadyLogged ProgressErrorCode = "PRG-010002"
	ErrCodeMeasurementPredatesGoal  ProgressErrorCode = "PRG-010003"
)

// ProgressError represents a progress error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
