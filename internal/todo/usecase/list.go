package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo-web/internal/model"
	"todo-web/internal/todo"
	"todo-web/internal/todo/repository"
	"todo-web/internal/todo/tasklist"
)

func (uc *implUseCase) Mount(ctx context.Context, sc model.Scope) (todo.ListOutput, error) {
	list := uc.lists.For(sc)

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Mount: ListTasks: %v", err)
		return todo.ListOutput{
			Tasks:   list.Snapshot(),
			Pending: uc.Pending(ctx, sc),
		}, fmt.Errorf("%w: %v", todo.ErrListFailed, err)
	}

	// An empty result is authoritative too.
	list.Apply(func(cur []model.Task) []model.Task {
		return tasklist.ApplyReplaceAll(cur, tasks)
	})

	return todo.ListOutput{
		Tasks:   list.Snapshot(),
		Pending: uc.Pending(ctx, sc),
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, todo.ErrNotFound
		}
		uc.l.Errorf(ctx, "todo.usecase.Detail: GetTask %d: %v", id, err)
		return model.Task{}, fmt.Errorf("%w: %v", todo.ErrFetchFailed, err)
	}
	return task, nil
}
