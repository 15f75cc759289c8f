package rest

import (
	"context"
	"errors"
	"fmt"

	"todo-web/internal/model"
	"todo-web/internal/todo/repository"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/todoapi"
)

type implRepository struct {
	client *todoapi.Client
	l      pkgLog.Logger
}

// New creates a Repository backed by the to-do REST API.
func New(client *todoapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	todos, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(todos))
	for _, t := range todos {
		tasks = append(tasks, toTask(t))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	todo, err := r.client.GetTask(ctx, id)
	if err != nil {
		// A success status without a payload resolves nothing either.
		if errors.Is(err, todoapi.ErrNotFound) || errors.Is(err, todoapi.ErrMissingData) {
			return model.Task{}, fmt.Errorf("%w: %v", repository.ErrNotFound, err)
		}
		r.l.Errorf(ctx, "rest repository: get task %d: %v", id, err)
		return model.Task{}, err
	}
	return toTask(todo), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	todo, err := r.client.CreateTask(ctx, todoapi.TaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
	})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: create task: %v", err)
		return model.Task{}, err
	}
	return toTask(todo), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	todo, err := r.client.UpdateTask(ctx, opt.ID, todoapi.TaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
	})
	if err != nil {
		if errors.Is(err, todoapi.ErrNotFound) {
			return model.Task{}, fmt.Errorf("%w: %v", repository.ErrNotFound, err)
		}
		r.l.Errorf(ctx, "rest repository: update task %d: %v", opt.ID, err)
		return model.Task{}, err
	}
	return toTask(todo), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "rest repository: delete task %d: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) SetTaskCompletion(ctx context.Context, task model.Task) (model.Task, error) {
	todo, err := r.client.SetTaskCompletion(ctx, task.ID, toTodo(task))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: set completion of task %d: %v", task.ID, err)
		return model.Task{}, err
	}
	return toTask(todo), nil
}

func toTask(t todoapi.Todo) model.Task {
	return model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete,
	}
}

func toTodo(t model.Task) todoapi.Todo {
	return todoapi.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsComplete:  t.IsComplete,
	}
}
