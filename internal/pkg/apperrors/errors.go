package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrRefreshFailed      = errors.New("token refresh failed")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrRoleNotAllowed   = errors.New("role not allowed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Backend errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendResponse    = errors.New("unexpected backend response")
)

// Attendance errors
var (
	ErrAttendanceExists = errors.New("attendance already recorded for this lesson")
	ErrLessonNotToday   = errors.New("lesson does not occur today")
	ErrPartialBatch     = errors.New("some records could not be saved")
)

// Exam errors
var (
	ErrEmptyRoster = errors.New("no students enrolled in the session's course")
)

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBackendError wraps an error reported by the backend, carrying the
// message the backend put in its error envelope.
func NewBackendError(err error, message string) error {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
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
