package http

import (
	"errors"
	"net/http"

	"todo-web/internal/confirm"
	"todo-web/internal/todo"
	"todo-web/pkg/response"
)

var errMissingSession = errors.New("request has no session")

// mapError picks the status and notification for a failed action.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return http.StatusNotFound, todo.MsgNotFound
	case errors.Is(err, todo.ErrListFailed):
		return http.StatusBadGateway, todo.MsgListFailed
	case errors.Is(err, todo.ErrFetchFailed):
		return http.StatusBadGateway, todo.MsgFetchFailed
	case errors.Is(err, todo.ErrSaveFailed):
		return http.StatusBadGateway, todo.MsgSaveFailed
	case errors.Is(err, confirm.ErrNotOpen), errors.Is(err, todo.ErrUnknownKind):
		return http.StatusConflict, todo.MsgNotOpen
	default:
		return http.StatusInternalServerError, response.DefaultErrorMessage
	}
}
