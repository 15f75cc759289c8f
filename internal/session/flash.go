package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"todo-web/internal/model"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/storage"
)

// FlashTTL bounds how long an undelivered notification is kept. Sessions that
// never render another page would otherwise leave their queue behind.
const FlashTTL = 10 * time.Minute

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Flash is a transient notification shown once on the next rendered page.
type Flash struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier queues and drains per-session notifications.
type Notifier interface {
	Success(ctx context.Context, sc model.Scope, message string)
	Failure(ctx context.Context, sc model.Scope, message string)
	Pop(ctx context.Context, sc model.Scope) []Flash
}

type implNotifier struct {
	kv storage.Storage
	l  pkgLog.Logger
	mu sync.Mutex
}

// NewNotifier creates a Notifier persisting flashes in kv.
func NewNotifier(kv storage.Storage, l pkgLog.Logger) Notifier {
	return &implNotifier{kv: kv, l: l}
}

func flashKey(sc model.Scope) string {
	return fmt.Sprintf("session:%s:flashes", sc.SessionID)
}

func (n *implNotifier) Success(ctx context.Context, sc model.Scope, message string) {
	n.push(ctx, sc, Flash{Level: LevelSuccess, Message: message})
}

func (n *implNotifier) Failure(ctx context.Context, sc model.Scope, message string) {
	n.push(ctx, sc, Flash{Level: LevelError, Message: message})
}

// push never fails the caller: a lost notification only costs a message.
func (n *implNotifier) push(ctx context.Context, sc model.Scope, f Flash) {
	n.mu.Lock()
	defer n.mu.Unlock()

	flashes, err := n.load(ctx, sc)
	if err != nil {
		n.l.Warnf(ctx, "session: load flashes: %v", err)
	}
	flashes = append(flashes, f)

	raw, err := json.Marshal(flashes)
	if err != nil {
		n.l.Errorf(ctx, "session: encode flashes: %v", err)
		return
	}
	if err := n.kv.SetTTL(ctx, flashKey(sc), string(raw), FlashTTL); err != nil {
		n.l.Warnf(ctx, "session: store flash %q: %v", f.Message, err)
	}
}

func (n *implNotifier) Pop(ctx context.Context, sc model.Scope) []Flash {
	n.mu.Lock()
	defer n.mu.Unlock()

	flashes, err := n.load(ctx, sc)
	if err != nil {
		n.l.Warnf(ctx, "session: load flashes: %v", err)
		return nil
	}
	if len(flashes) == 0 {
		return nil
	}
	if err := n.kv.Delete(ctx, flashKey(sc)); err != nil {
		n.l.Warnf(ctx, "session: clear flashes: %v", err)
	}
	return flashes
}

func (n *implNotifier) load(ctx context.Context, sc model.Scope) ([]Flash, error) {
	raw, err := n.kv.Get(ctx, flashKey(sc))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil, fmt.Errorf("decode flashes: %w", err)
	}
	return flashes, nil
}
