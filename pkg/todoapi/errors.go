package todoapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingData is returned when a 2xx response carries no "data" payload.
	ErrMissingData  = errors.New("todoapi: response has no data")
	ErrNotFound     = errors.New("todoapi: not found")
	ErrUnauthorized = errors.New("todoapi: unauthorized")
)

// APIError is a non-2xx backend response.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todoapi %s error %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("todoapi %s error %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Is lets errors.Is match ErrNotFound and ErrUnauthorized by status code.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}
