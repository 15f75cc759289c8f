package tasklist

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-web/internal/model"
)

// List is the task list of one session. Concurrent Apply calls are
// serialized; the last one to run wins.
type List struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// Snapshot returns a copy of the current tasks.
func (l *List) Snapshot() []model.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Find(id int64) (model.Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Find(l.tasks, id)
}

// Apply replaces the tasks with reduce(current).
func (l *List) Apply(reduce func([]model.Task) []model.Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = reduce(l.tasks)
}

const (
	DefaultRegistrySize = 10000
	DefaultIdleTTL      = 2 * time.Hour
)

// Registry keeps one List per session and forgets idle ones.
type Registry struct {
	mu    sync.Mutex
	lists *expirable.LRU[string, *List]
}

func NewRegistry(size int, idleTTL time.Duration) *Registry {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{lists: expirable.NewLRU[string, *List](size, nil, idleTTL)}
}

// For returns the session's list, creating an empty one on first use.
func (r *Registry) For(sc model.Scope) *List {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.lists.Get(sc.SessionID); ok {
		// Re-adding refreshes the idle deadline.
		r.lists.Add(sc.SessionID, l)
		return l
	}
	l := &List{}
	r.lists.Add(sc.SessionID, l)
	return l
}

// Forget drops the session's list.
func (r *Registry) Forget(sc model.Scope) {
	r.lists.Remove(sc.SessionID)
}
