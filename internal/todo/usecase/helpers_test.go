package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"todo-web/internal/confirm"
	"todo-web/internal/model"
	"todo-web/internal/session"
	"todo-web/internal/todo"
	"todo-web/internal/todo/repository"
	"todo-web/internal/todo/tasklist"
	"todo-web/internal/todo/usecase"
	pkgLog "todo-web/pkg/log"
)

// mockRepo records calls and delegates to optional funcs.
type mockRepo struct {
	mu    sync.Mutex
	calls []string

	listFunc       func() ([]model.Task, error)
	getFunc        func(id int64) (model.Task, error)
	createFunc     func(opt repository.CreateTaskOptions) (model.Task, error)
	updateFunc     func(opt repository.UpdateTaskOptions) (model.Task, error)
	deleteFunc     func(id int64) error
	completionFunc func(task model.Task) (model.Task, error)
}

func (m *mockRepo) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	m.record("ListTasks")
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	m.record("GetTask")
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Task{ID: id}, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.record("CreateTask")
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{ID: 100, Title: opt.Title, Description: opt.Description}, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.record("UpdateTask")
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Task{ID: opt.ID, Title: opt.Title, Description: opt.Description}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	m.record("DeleteTask")
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockRepo) SetTaskCompletion(ctx context.Context, task model.Task) (model.Task, error) {
	m.record("SetTaskCompletion")
	if m.completionFunc != nil {
		return m.completionFunc(task)
	}
	return task, nil
}

type mockNotifier struct {
	mu      sync.Mutex
	flashes []session.Flash
}

func (m *mockNotifier) Success(ctx context.Context, sc model.Scope, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flashes = append(m.flashes, session.Flash{Level: session.LevelSuccess, Message: message})
}

func (m *mockNotifier) Failure(ctx context.Context, sc model.Scope, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flashes = append(m.flashes, session.Flash{Level: session.LevelError, Message: message})
}

func (m *mockNotifier) Pop(ctx context.Context, sc model.Scope) []session.Flash {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.flashes
	m.flashes = nil
	return out
}

func (m *mockNotifier) last() session.Flash {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.flashes) == 0 {
		return session.Flash{}
	}
	return m.flashes[len(m.flashes)-1]
}

type fixture struct {
	repo     *mockRepo
	notifier *mockNotifier
	lists    *tasklist.Registry
	uc       todo.UseCase
}

func newFixture(t *testing.T, repo *mockRepo) fixture {
	t.Helper()
	notifier := &mockNotifier{}
	lists := tasklist.NewRegistry(16, time.Hour)
	uc := usecase.New(
		pkgLog.NewNop(),
		repo,
		lists,
		notifier,
		confirm.NewGate(confirm.KindDelete, 16, time.Minute),
		confirm.NewGate(confirm.KindToggle, 16, time.Minute),
	)
	return fixture{repo: repo, notifier: notifier, lists: lists, uc: uc}
}

var testScope = model.Scope{SessionID: "session-1"}

const longDescription = "This description is comfortably longer than fifty characters."
