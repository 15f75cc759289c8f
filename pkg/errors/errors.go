package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrBadRequest    = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound      = NewHTTPError(http.StatusNotFound, "not found")
	ErrUnauthorized  = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyReqs   = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
