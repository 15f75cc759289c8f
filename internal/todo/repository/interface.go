package repository

import (
	"context"

	"todo-web/internal/model"
)

// Repository is the data access interface for the remote task collection.
// Every method performs exactly one backend call.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	// SetTaskCompletion sends task as the desired state.
	SetTaskCompletion(ctx context.Context, task model.Task) (model.Task, error)
}
