package tasklist_test

import (
	"sync"
	"testing"

	"todo-web/internal/model"
	"todo-web/internal/todo/tasklist"
)

func TestRegistry(t *testing.T) {
	r := tasklist.NewRegistry(0, 0)
	s1 := model.Scope{SessionID: "s1"}

	l := r.For(s1)
	if len(l.Snapshot()) != 0 {
		t.Fatalf("expected empty list")
	}
	l.Apply(func(cur []model.Task) []model.Task { return tasklist.ApplyReplaceAll(cur, sample()) })

	if r.For(s1) != l {
		t.Errorf("expected the same list for the same session")
	}
	if len(r.For(model.Scope{SessionID: "s2"}).Snapshot()) != 0 {
		t.Errorf("sessions must not share lists")
	}

	r.Forget(s1)
	if len(r.For(s1).Snapshot()) != 0 {
		t.Errorf("expected a fresh list after Forget")
	}
}

func TestListSnapshotIsCopy(t *testing.T) {
	var l tasklist.List
	l.Apply(func(cur []model.Task) []model.Task { return sample() })

	snap := l.Snapshot()
	snap[0].Title = "changed"
	if task, _ := l.Find(1); task.Title != "A" {
		t.Errorf("snapshot must not alias list state")
	}
}

func TestListConcurrentApply(t *testing.T) {
	var l tasklist.List
	l.Apply(func(cur []model.Task) []model.Task { return sample() })

	var wg sync.WaitGroup
	for _, task := range sample() {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			l.Apply(func(cur []model.Task) []model.Task { return tasklist.ApplyDelete(cur, id) })
		}(task.ID)
	}
	wg.Wait()

	if n := len(l.Snapshot()); n != 0 {
		t.Errorf("expected all tasks removed, got %d", n)
	}
}
