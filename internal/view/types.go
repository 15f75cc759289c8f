package view

import (
	"todo-web/internal/confirm"
	"todo-web/internal/model"
	"todo-web/internal/validation"
)

type LoginData struct {
	Form   validation.LoginForm
	Errors validation.Errors
}

type SignupData struct {
	Form   validation.SignupForm
	Errors validation.Errors
}

type ListData struct {
	Tasks         []model.Task
	Confirmations []confirm.Confirmation
}

// TaskFormData backs both the create page (ID 0) and the edit page.
type TaskFormData struct {
	ID     int64
	Form   validation.TaskForm
	Errors validation.Errors
}

type NotFoundData struct {
	Message string
}
