package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-web/internal/credential"
	"todo-web/internal/model"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/storage"
	"todo-web/pkg/storage/memory"
)

type failingStorage struct{}

func (failingStorage) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}
func (failingStorage) Set(ctx context.Context, key, value string) error { return nil }
func (failingStorage) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (failingStorage) Delete(ctx context.Context, key string) error { return nil }
func (failingStorage) Ping(ctx context.Context) error               { return nil }

func newStore(t *testing.T) (credential.Store, storage.Storage) {
	t.Helper()
	kv, err := memory.New(16)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	return credential.New(kv, pkgLog.NewNop()), kv
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{SessionID: "s1"}

	t.Run("absent by default", func(t *testing.T) {
		store, _ := newStore(t)
		_, ok, err := store.Get(ctx, sc)
		if err != nil || ok {
			t.Errorf("expected absent token, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		store, kv := newStore(t)
		if err := store.Set(ctx, sc, "tok-1"); err != nil {
			t.Fatalf("set: %v", err)
		}
		token, ok, err := store.Get(ctx, sc)
		if err != nil || !ok || token != "tok-1" {
			t.Errorf("unexpected get: %q ok=%v err=%v", token, ok, err)
		}

		raw, _ := kv.Get(ctx, "session:s1:accessToken")
		if raw != `"tok-1"` {
			t.Errorf("expected single JSON encoding, got %s", raw)
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		store, _ := newStore(t)
		store.Set(ctx, sc, "tok-1")
		_, ok, _ := store.Get(ctx, model.Scope{SessionID: "s2"})
		if ok {
			t.Errorf("expected no token for another session")
		}
	})

	t.Run("clear", func(t *testing.T) {
		store, _ := newStore(t)
		store.Set(ctx, sc, "tok-1")
		if err := store.Clear(ctx, sc); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if _, ok, _ := store.Get(ctx, sc); ok {
			t.Errorf("expected token to be cleared")
		}
	})

	t.Run("undecodable value is absent", func(t *testing.T) {
		store, kv := newStore(t)
		kv.Set(ctx, "session:s1:accessToken", "not-json")
		if _, ok, err := store.Get(ctx, sc); ok || err != nil {
			t.Errorf("expected absent, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		store := credential.New(failingStorage{}, pkgLog.NewNop())
		if _, _, err := store.Get(ctx, sc); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestTokenSource(t *testing.T) {
	store, _ := newStore(t)
	sc := model.Scope{SessionID: "s1"}
	store.Set(context.Background(), sc, "tok-1")

	ts := credential.NewTokenSource(store, pkgLog.NewNop())

	if _, ok := ts.AccessToken(context.Background()); ok {
		t.Errorf("expected no token without scope")
	}

	ctx := model.SetScopeToContext(context.Background(), sc)
	token, ok := ts.AccessToken(ctx)
	if !ok || token != "tok-1" {
		t.Errorf("unexpected token: %q ok=%v", token, ok)
	}

	failing := credential.NewTokenSource(credential.New(failingStorage{}, pkgLog.NewNop()), pkgLog.NewNop())
	if _, ok := failing.AccessToken(ctx); ok {
		t.Errorf("expected storage failure to count as no token")
	}
}
