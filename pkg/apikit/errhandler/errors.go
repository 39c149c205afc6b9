package errhandler

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Request-level failures with a fixed response.
var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// HTTPError is an error that carries its own status and message.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError. An empty message uses the status text.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// RecordNotFoundError reports a lookup by ID that matched no row.
type RecordNotFoundError struct {
	Model string
	Err   error
}

func (e *RecordNotFoundError) Error() string {
	return "no " + e.Model + " with the specified ID"
}

func (e *RecordNotFoundError) Unwrap() error {
	return e.Err
}

// ModelNotFound names the model of a gorm.ErrRecordNotFound so that the
// response can mention it. Other errors, and nil, pass through.
func ModelNotFound(model string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RecordNotFoundError{Model: model, Err: err}
	}
	return err
}
