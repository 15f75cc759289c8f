package http

import (
	"todo-web/internal/model"
	"todo-web/internal/todo"
	"todo-web/internal/validation"
	"todo-web/internal/view"
)

type taskReq struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func (r taskReq) toInput() todo.TaskInput {
	return todo.TaskInput{Title: r.Title, Description: r.Description}
}

func (r taskReq) toView(id int64, errs validation.Errors) view.TaskFormData {
	return view.TaskFormData{
		ID:     id,
		Form:   validation.TaskForm{Title: r.Title, Description: r.Description},
		Errors: errs,
	}
}

func newTaskFormData(t model.Task) view.TaskFormData {
	return view.TaskFormData{
		ID:   t.ID,
		Form: validation.TaskForm{Title: t.Title, Description: t.Description},
	}
}

func newListData(out todo.ListOutput) view.ListData {
	return view.ListData{
		Tasks:         out.Tasks,
		Confirmations: out.Pending,
	}
}
