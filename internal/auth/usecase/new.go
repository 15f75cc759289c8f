package usecase

import (
	"todo-web/internal/auth/repository"
	"todo-web/internal/credential"
	"todo-web/internal/model"
	"todo-web/internal/session"
	pkgLog "todo-web/pkg/log"
)

// SessionState is per-session state dropped on logout.
type SessionState interface {
	Forget(sc model.Scope)
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	credentials credential.Store
	notifier    session.Notifier
	state       []SessionState
}

// New creates the auth UseCase.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	credentials credential.Store,
	notifier session.Notifier,
	state ...SessionState,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		credentials: credentials,
		notifier:    notifier,
		state:       state,
	}
}
