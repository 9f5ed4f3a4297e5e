package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Storage errors
	ErrUnavailable = errors.New("storage unavailable")
)

// Rating errors
var (
	ErrRatingNotFound  = errors.New("rating not found")
	ErrDuplicateRating = errors.New("user has already rated this instructor")
)

// Instructor errors
var (
	ErrInstructorNotFound = errors.New("instructor not found")
)

// CustomError pairs a sentinel with a caller-facing message. errors.Is
// still matches the sentinel through Unwrap, while Error() reads as the
// message alone.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation failure carrying a message fit
// for the API response.
func NewValidationError(message string) *CustomError {
	return NewCustomError(ErrValidationFailed, message)
}
