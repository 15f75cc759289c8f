package todo

import (
	"context"

	"todo-web/internal/confirm"
	"todo-web/internal/model"
)

// UseCase drives the task pages of one session.
type UseCase interface {
	// Mount refreshes the session list from the backend. On failure the
	// previous list is returned alongside ErrListFailed.
	Mount(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Task, error)
	Create(ctx context.Context, sc model.Scope, input TaskInput) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, id int64, input TaskInput) (model.Task, error)

	// RequestDelete and RequestToggle open a confirmation; nothing is sent
	// to the backend until it is confirmed.
	RequestDelete(ctx context.Context, sc model.Scope, id int64) confirm.Confirmation
	RequestToggle(ctx context.Context, sc model.Scope, id int64) (confirm.Confirmation, error)
	Confirm(ctx context.Context, sc model.Scope, kind confirm.Kind, id string) error
	Cancel(ctx context.Context, sc model.Scope, kind confirm.Kind, id string) error
	Pending(ctx context.Context, sc model.Scope) []confirm.Confirmation
}
