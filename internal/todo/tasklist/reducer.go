package tasklist

import "todo-web/internal/model"

// The reducers below never modify their input slice.

// ApplyReplaceAll returns a copy of fetched; it becomes the whole list.
func ApplyReplaceAll(_ []model.Task, fetched []model.Task) []model.Task {
	out := make([]model.Task, len(fetched))
	copy(out, fetched)
	return out
}

// ApplyDelete removes every entry with the given id.
func ApplyDelete(list []model.Task, id int64) []model.Task {
	out := make([]model.Task, 0, len(list))
	for _, t := range list {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// ApplyReplace swaps in task where an entry has the same id. The list is
// returned unchanged when no entry matches.
func ApplyReplace(list []model.Task, task model.Task) []model.Task {
	out := make([]model.Task, len(list))
	for i, t := range list {
		if t.ID == task.ID {
			out[i] = task
		} else {
			out[i] = t
		}
	}
	return out
}

// Toggled returns a copy of t with the completion flag inverted.
func Toggled(t model.Task) model.Task {
	t.IsComplete = !t.IsComplete
	return t
}

// Find returns the entry with the given id.
func Find(list []model.Task, id int64) (model.Task, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
