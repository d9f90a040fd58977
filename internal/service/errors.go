package service

import "fmt"

// ValidationError marks a request whose ingress could not be understood at
// all (e.g. malformed multipart or vote payload). Missing optional fields
// are never a validation error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Msg)
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
