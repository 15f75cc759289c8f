package model

// Task is one to-do item. The remote backend owns it; the service only mirrors it.
type Task struct {
	ID          int64
	Title       string
	Description string
	IsComplete  bool
}
