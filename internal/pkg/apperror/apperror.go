package apperror

import "fmt"

// AppError is an error that carries the HTTP status it should be reported
// with. Message is safe to show to the caller; Err (if set) stays internal.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and a user-facing message.
func New(status int, message string) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
	}
}

// Newf creates an AppError with a formatted user-facing message.
func Newf(status int, format string, args ...any) *AppError {
	return &AppError{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a status and message to an existing error, keeping the
// original reachable through errors.Unwrap.
func Wrap(err error, status int, message string) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}
