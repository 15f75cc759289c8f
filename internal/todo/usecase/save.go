package usecase

import (
	"context"
	"errors"
	"fmt"

	"todo-web/internal/model"
	"todo-web/internal/todo"
	"todo-web/internal/todo/repository"
	"todo-web/internal/todo/tasklist"
	"todo-web/internal/validation"
)

// Create validates input and creates the task. Validation failures are
// returned as validation.Errors before any backend call.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.TaskInput) (model.Task, error) {
	form := validation.TaskForm{Title: input.Title, Description: input.Description}
	if err := validation.Validate(&form); err != nil {
		return model.Task{}, err
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Create: CreateTask: %v", err)
		return model.Task{}, fmt.Errorf("%w: %v", todo.ErrSaveFailed, err)
	}

	uc.notifier.Success(ctx, sc, todo.MsgCreated)
	return task, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id int64, input todo.TaskInput) (model.Task, error) {
	form := validation.TaskForm{Title: input.Title, Description: input.Description}
	if err := validation.Validate(&form); err != nil {
		return model.Task{}, err
	}

	task, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          id,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, todo.ErrNotFound
		}
		uc.l.Errorf(ctx, "todo.usecase.Update: UpdateTask %d: %v", id, err)
		return model.Task{}, fmt.Errorf("%w: %v", todo.ErrSaveFailed, err)
	}

	uc.lists.For(sc).Apply(func(cur []model.Task) []model.Task {
		return tasklist.ApplyReplace(cur, task)
	})
	uc.notifier.Success(ctx, sc, todo.MsgUpdated)
	return task, nil
}
