package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalOwnership is returned when a goal belongs to another user.
	ErrGoalOwnership = errors.New("goal belongs to another user")

	// ErrActiveGoalExists is returned when the user already has an ACTIVE goal.
	ErrActiveGoalExists = errors.New("an active goal already exists")

	// ErrGoalNotActive is returned when an operation requires an ACTIVE goal.
	ErrGoalNotActive = errors.New("goal is not active")

	// ErrUnsafeTarget is returned when a cutting target is below the sex-specific
	// safety floor.
	ErrUnsafeTarget = errors.New("target body fat is below the safe minimum")

	// ErrInvalidOrdering is returned when the target or ceiling is on the wrong
	// side of the current body fat for the goal type.
	ErrInvalidOrdering = errors.New("goal boundary is inconsistent with current body fat")

	// ErrMissingBoundary is returned when a goal does not carry exactly one
	// boundary: the required target or ceiling is absent, or the boundary
	// for the other goal type is present.
	ErrMissingBoundary = errors.New("goal must carry exactly one boundary value")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Creation errors (01XXXX)
	ErrCodeActiveGoalExists GoalErrorCode = "GOL-010001"
	ErrCodeUnsafeTarget     GoalErrorCode = "GOL-010002"
	ErrCodeInvalidOrdering  GoalErrorCode = "GOL-010003"
	ErrCodeMissingBoundary  GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalType  GoalErrorCode = "GOL-010005"

	// Lookup and lifecycle errors (02XXXX)
	ErrCodeGoalNotFound  GoalErrorCode = "GOL-020001"
	ErrCodeGoalOwnership GoalErrorCode = "GOL-020002"
	ErrCodeGoalNotActive GoalErrorCode = "GOL-020003"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
