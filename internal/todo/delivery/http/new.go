package http

import (
	"todo-web/internal/session"
	"todo-web/internal/todo"
	"todo-web/internal/view"
	"todo-web/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       todo.UseCase
	notifier session.Notifier
	render   *view.Renderer
}

// New creates the HTTP handler for the task pages.
func New(l log.Logger, uc todo.UseCase, notifier session.Notifier, render *view.Renderer) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		notifier: notifier,
		render:   render,
	}
}
