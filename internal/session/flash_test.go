package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"todo-web/internal/model"
	"todo-web/internal/session"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/storage"
	"todo-web/pkg/storage/memory"
)

// ttlRecorder wraps a store and remembers the ttl of each write.
type ttlRecorder struct {
	storage.Storage
	ttls map[string]time.Duration
}

func (r *ttlRecorder) Set(ctx context.Context, key, value string) error {
	r.ttls[key] = 0
	return r.Storage.Set(ctx, key, value)
}

func (r *ttlRecorder) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	r.ttls[key] = ttl
	return r.Storage.SetTTL(ctx, key, value, ttl)
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	kv, _ := memory.New(16)
	n := session.NewNotifier(kv, pkgLog.NewNop())
	sc := model.Scope{SessionID: "s1"}

	if got := n.Pop(ctx, sc); got != nil {
		t.Errorf("expected no flashes, got %+v", got)
	}

	n.Success(ctx, sc, "Todo deleted successfully.")
	n.Failure(ctx, sc, "Failed to delete todo.")
	n.Success(ctx, model.Scope{SessionID: "s2"}, "other")

	got := n.Pop(ctx, sc)
	if len(got) != 2 {
		t.Fatalf("expected 2 flashes, got %+v", got)
	}
	if got[0].Level != session.LevelSuccess || got[1].Level != session.LevelError {
		t.Errorf("unexpected levels: %+v", got)
	}

	if again := n.Pop(ctx, sc); again != nil {
		t.Errorf("flashes must be shown once, got %+v", again)
	}
	if other := n.Pop(ctx, model.Scope{SessionID: "s2"}); len(other) != 1 {
		t.Errorf("expected the other session's flash to survive, got %+v", other)
	}
}

func TestNotifierFlashesExpire(t *testing.T) {
	ctx := context.Background()
	kv, _ := memory.New(16)
	rec := &ttlRecorder{Storage: kv, ttls: map[string]time.Duration{}}
	n := session.NewNotifier(rec, pkgLog.NewNop())
	sc := model.Scope{SessionID: "s1"}

	n.Failure(ctx, sc, "Too many attempts")

	if len(rec.ttls) != 1 {
		t.Fatalf("expected one write, got %v", rec.ttls)
	}
	for key, ttl := range rec.ttls {
		if !strings.HasSuffix(key, ":flashes") || ttl != session.FlashTTL {
			t.Errorf("expected %s written with ttl %s, got ttl %s", key, session.FlashTTL, ttl)
		}
	}
}
