package apperrors

import "errors"

// Catalog errors
var (
	// ErrEmptyCatalog is returned when a student is synthesized against a
	// college that has no faculty or department to place it in.
	ErrEmptyCatalog = errors.New("college has no faculties or departments")
	// ErrInsufficientCourses is returned when a level's catalog holds fewer
	// distinct course codes than a student must be enrolled in.
	ErrInsufficientCourses = errors.New("not enough courses in catalog for level")
)

// Faculty Errors
var (
	ErrFacultyNotFound = errors.New("faculty not found")
)

// Department Errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists in faculty")
)

// Enrollment errors
var (
	// ErrEnrollmentMismatch is returned when the college total no longer
	// matches the sum of its department rosters.
	ErrEnrollmentMismatch = errors.New("total student count does not match department rosters")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// NewNotFoundError wraps a not-found sentinel with a message naming what was looked up
func NewNotFoundError(err error, message string) error {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
