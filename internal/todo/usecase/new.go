package usecase

import (
	"todo-web/internal/confirm"
	"todo-web/internal/session"
	"todo-web/internal/todo/repository"
	"todo-web/internal/todo/tasklist"
	pkgLog "todo-web/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	lists    *tasklist.Registry
	notifier session.Notifier
	gates    map[confirm.Kind]*confirm.Gate
}

// New creates the todo UseCase. gates must contain one gate per action kind
// the pages offer (delete, toggle).
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	lists *tasklist.Registry,
	notifier session.Notifier,
	gates ...*confirm.Gate,
) *implUseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		lists:    lists,
		notifier: notifier,
		gates:    make(map[confirm.Kind]*confirm.Gate, len(gates)),
	}
	for _, g := range gates {
		uc.gates[g.Kind()] = g
	}
	return uc
}
