package usecase

import (
	"context"
	"fmt"

	"todo-web/internal/confirm"
	"todo-web/internal/model"
	"todo-web/internal/todo"
	"todo-web/internal/todo/tasklist"
)

func (uc *implUseCase) RequestDelete(ctx context.Context, sc model.Scope, id int64) confirm.Confirmation {
	return uc.gates[confirm.KindDelete].Open(sc, todo.MsgConfirmDelete, func(ctx context.Context) error {
		return uc.deleteTask(ctx, sc, id)
	})
}

// RequestToggle asks to flip the completion flag of a task in the session
// list. The prompt reflects the task's state at request time.
func (uc *implUseCase) RequestToggle(ctx context.Context, sc model.Scope, id int64) (confirm.Confirmation, error) {
	task, ok := uc.lists.For(sc).Find(id)
	if !ok {
		return confirm.Confirmation{}, todo.ErrNotFound
	}

	msg := todo.MsgConfirmComplete
	if task.IsComplete {
		msg = todo.MsgConfirmPending
	}
	return uc.gates[confirm.KindToggle].Open(sc, msg, func(ctx context.Context) error {
		return uc.toggleTask(ctx, sc, task)
	}), nil
}

func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, kind confirm.Kind, id string) error {
	g, ok := uc.gates[kind]
	if !ok {
		return todo.ErrUnknownKind
	}
	return g.Confirm(ctx, sc, id)
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, kind confirm.Kind, id string) error {
	g, ok := uc.gates[kind]
	if !ok {
		return todo.ErrUnknownKind
	}
	return g.Cancel(sc, id)
}

// Pending lists the open confirmations in delete, toggle order.
func (uc *implUseCase) Pending(ctx context.Context, sc model.Scope) []confirm.Confirmation {
	var out []confirm.Confirmation
	for _, kind := range []confirm.Kind{confirm.KindDelete, confirm.KindToggle} {
		g, ok := uc.gates[kind]
		if !ok {
			continue
		}
		if c, ok := g.Current(sc); ok {
			out = append(out, c)
		}
	}
	return out
}

func (uc *implUseCase) deleteTask(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "todo.usecase.deleteTask: DeleteTask %d: %v", id, err)
		uc.notifier.Failure(ctx, sc, todo.MsgDeleteFailed)
		return fmt.Errorf("%w: %v", todo.ErrDeleteFailed, err)
	}

	uc.lists.For(sc).Apply(func(cur []model.Task) []model.Task {
		return tasklist.ApplyDelete(cur, id)
	})
	uc.notifier.Success(ctx, sc, todo.MsgDeleted)
	return nil
}

// toggleTask reconciles from the backend's answer. The flipped copy is used
// only when the answer is not about the same task.
func (uc *implUseCase) toggleTask(ctx context.Context, sc model.Scope, task model.Task) error {
	updated, err := uc.repo.SetTaskCompletion(ctx, tasklist.Toggled(task))
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.toggleTask: SetTaskCompletion %d: %v", task.ID, err)
		uc.notifier.Failure(ctx, sc, todo.MsgToggleFailed)
		return fmt.Errorf("%w: %v", todo.ErrToggleFailed, err)
	}
	if updated.ID != task.ID {
		// The call succeeded but the payload names another task.
		uc.l.Warnf(ctx, "todo.usecase.toggleTask: response id %d for task %d, keeping the flipped copy", updated.ID, task.ID)
		updated = tasklist.Toggled(task)
	}

	uc.lists.For(sc).Apply(func(cur []model.Task) []model.Task {
		return tasklist.ApplyReplace(cur, updated)
	})

	msg := todo.MsgMarkedPending
	if updated.IsComplete {
		msg = todo.MsgMarkedComplete
	}
	uc.notifier.Success(ctx, sc, msg)
	return nil
}
