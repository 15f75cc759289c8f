package todo

import (
	"todo-web/internal/confirm"
	"todo-web/internal/model"
)

// TaskInput is the submitted create/edit form.
type TaskInput struct {
	Title       string
	Description string
}

// ListOutput is what the list page renders.
type ListOutput struct {
	Tasks   []model.Task
	Pending []confirm.Confirmation
}

// User-facing messages.
const (
	MsgConfirmDelete   = "Are you sure you want to delete this todo?"
	MsgConfirmComplete = "Are you sure you want to mark this todo as complete?"
	MsgConfirmPending  = "Are you sure you want to mark this todo as pending?"
	MsgDeleted         = "Todo deleted successfully."
	MsgDeleteFailed    = "Failed to delete todo."
	MsgMarkedComplete  = "Todo marked as complete."
	MsgMarkedPending   = "Todo marked as pending."
	MsgToggleFailed    = "Failed to update todo status."
	MsgCreated         = "Todo created successfully"
	MsgUpdated         = "Todo updated successfully"
	MsgSaveFailed      = "Error saving todo"
	MsgListFailed      = "Failed to load todos."
	MsgFetchFailed     = "Failed to load todo."
	MsgNotFound        = "Todo not found"
	MsgNotOpen         = "This confirmation is no longer open."
)
