package todo

import "errors"

var (
	ErrNotFound     = errors.New("todo not found")
	ErrListFailed   = errors.New("failed to list todos")
	ErrFetchFailed  = errors.New("failed to fetch todo")
	ErrSaveFailed   = errors.New("failed to save todo")
	ErrDeleteFailed = errors.New("failed to delete todo")
	ErrToggleFailed = errors.New("failed to update todo status")
	ErrUnknownKind  = errors.New("unknown confirmation kind")
)
