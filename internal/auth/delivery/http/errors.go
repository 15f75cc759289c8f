package http

import (
	"errors"
	"net/http"

	"todo-web/internal/auth"
)

var errMissingSession = errors.New("request has no session")

// mapError picks the status and notification for a failed submission.
// Unknown errors get the generic message for the page.
func (h *handler) mapError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, auth.ErrAuthFailed):
		return http.StatusUnauthorized, auth.MsgLoginRejected
	case errors.Is(err, auth.ErrSignupFailed):
		return http.StatusBadRequest, auth.MsgSignupRejected
	default:
		return http.StatusInternalServerError, fallback
	}
}
