package error

import "errors"

// Measurement domain errors.
var (
	// ErrMeasurementNotFound is returned when a measurement does not exist.
	ErrMeasurementNotFound = errors.New("measurement not found")

	// ErrMeasurementOwnership is returned when a measurement belongs to another user.
	ErrMeasurementOwnership = errors.New("measurement belongs to another user")

	// ErrMissingInput is returned when a required raw input for the chosen
	// calculation method is absent.
	ErrMissingInput = errors.New("missing required measurement input")

	// ErrInputOutOfRange is returned when a raw input falls outside its
	// plausible physical range.
	ErrInputOutOfRange = errors.New("measurement input out of range")

	// ErrUnknownMethod is returned when the calculation method is not recognized.
	ErrUnknownMethod = errors.New("unknown calculation method")
)

// MeasurementErrorCode defines error codes for measurement errors.
// Format: MSR-XXYYYY where XX is category and YYYY is specific error.
type MeasurementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingInput    MeasurementErrorCode = "MSR-010001"
	ErrCodeInputOutOfRange MeasurementErrorCode = "MSR-010002"
	ErrCodeUnknownMethod   MeasurementErrorCode = "MSR-010003"

	// Lookup errors (02XXXX)
	ErrCodeMeasurementNotFound  MeasurementErrorCode = "MSR-020001"
	ErrCodeMeasurementOwnership MeasurementErrorCode = "MSR-020002"
)

// MeasurementError represents a measurement error with code and message.
type MeasurementError struct {
	Code    MeasurementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MeasurementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MeasurementError) Unwrap() error {
	return e.Err
}

// NewMeasurementError creates a new MeasurementError with the given code and message.
func NewMeasurementError(code MeasurementErrorCode, message string, err error) *MeasurementError {
	return &MeasurementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
