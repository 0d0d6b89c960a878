// Package apperror defines the two domain error kinds the service layer is
// allowed to surface: NotFound for failed lookups by identifier, and General
// for everything else. NotFound carries an actionable message to the client
// (404); General hides the internal failure behind a stable operation prefix
// (500).
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is raised when a lookup by identifier yields no row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// GeneralError wraps an unexpected failure with a stable operation prefix so
// logs identify which operation failed without leaking internals.
type GeneralError struct {
	Message string
	Cause   error
}

func (e *GeneralError) Error() string {
	return e.Message
}

func (e *GeneralError) Unwrap() error {
	return e.Cause
}

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// General builds a GeneralError: "<prefix>: CAUSE: <cause>".
func General(prefix string, cause error) error {
	return &GeneralError{
		Message: fmt.Sprintf("%s: CAUSE: %v", prefix, cause),
		Cause:   cause,
	}
}

// Classify implements the propagation policy: NotFound errors pass through
// unchanged, anything else is wrapped in a General with the given prefix.
func Classify(err error, prefix string) error {
	if IsNotFound(err) {
		return err
	}
	return General(prefix, err)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// HTTPStatus maps a domain error to its HTTP status code.
func HTTPStatus(err error) int {
	if IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
