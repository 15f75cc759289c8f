package http

import (
	"todo-web/internal/auth"
	"todo-web/internal/session"
	"todo-web/internal/view"
	"todo-web/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       auth.UseCase
	notifier session.Notifier
	render   *view.Renderer
}

// New creates the HTTP handler for the auth pages.
func New(l log.Logger, uc auth.UseCase, notifier session.Notifier, render *view.Renderer) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		notifier: notifier,
		render:   render,
	}
}
