package confirm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-web/internal/model"
	"todo-web/pkg/metrics"
)

type Kind string

const (
	KindDelete Kind = "delete"
	KindToggle Kind = "toggle"
)

const (
	DefaultSize = 10000
	DefaultTTL  = 10 * time.Minute
)

// ErrNotOpen is returned when the confirmation id does not match the one open
// for the session, including after it expired or was already answered.
var ErrNotOpen = errors.New("confirmation is not open")

// Action is the side effect guarded by a gate.
type Action func(ctx context.Context) error

// Confirmation describes an open prompt.
type Confirmation struct {
	ID      string
	Kind    Kind
	Message string
}

type pending struct {
	Confirmation
	action Action
}

// Gate guards one kind of action. Each session has at most one open
// confirmation per gate; gates of different kinds never share state.
type Gate struct {
	kind    Kind
	mu      sync.Mutex
	pending *expirable.LRU[string, pending]
}

// NewGate creates a gate. Unanswered confirmations are dropped after ttl.
func NewGate(kind Kind, size int, ttl time.Duration) *Gate {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Gate{
		kind:    kind,
		pending: expirable.NewLRU[string, pending](size, nil, ttl),
	}
}

func (g *Gate) Kind() Kind {
	return g.kind
}

// Open shows message for the session, replacing any confirmation already open.
func (g *Gate) Open(sc model.Scope, message string, action Action) Confirmation {
	c := Confirmation{
		ID:      uuid.NewString(),
		Kind:    g.kind,
		Message: message,
	}

	g.mu.Lock()
	g.pending.Add(sc.SessionID, pending{Confirmation: c, action: action})
	g.mu.Unlock()

	return c
}

// Current returns the session's open confirmation.
func (g *Gate) Current(sc model.Scope) (Confirmation, bool) {
	p, ok := g.pending.Get(sc.SessionID)
	if !ok {
		return Confirmation{}, false
	}
	return p.Confirmation, true
}

// Confirm closes the confirmation and runs its action, returning the action's
// error. The gate is closed whatever the action returns.
func (g *Gate) Confirm(ctx context.Context, sc model.Scope, id string) error {
	p, err := g.take(sc, id)
	if err != nil {
		metrics.IncrementConfirmation(string(g.kind), "stale")
		return err
	}
	metrics.IncrementConfirmation(string(g.kind), "confirmed")
	return p.action(ctx)
}

// Cancel closes the confirmation without running its action.
func (g *Gate) Cancel(sc model.Scope, id string) error {
	if _, err := g.take(sc, id); err != nil {
		metrics.IncrementConfirmation(string(g.kind), "stale")
		return err
	}
	metrics.IncrementConfirmation(string(g.kind), "cancelled")
	return nil
}

func (g *Gate) take(sc model.Scope, id string) (pending, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending.Peek(sc.SessionID)
	if !ok || p.ID != id {
		return pending{}, ErrNotOpen
	}
	g.pending.Remove(sc.SessionID)
	return p, nil
}
