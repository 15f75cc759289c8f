package repository

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title       string
	Description string
}

// UpdateTaskOptions holds the parameters for replacing a task's text fields.
type UpdateTaskOptions struct {
	ID          int64
	Title       string
	Description string
}
