package repository

import "errors"

// ErrNotFound is returned when the backend has no task for the id.
var ErrNotFound = errors.New("task not found")
