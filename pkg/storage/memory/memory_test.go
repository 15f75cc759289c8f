package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-web/pkg/storage"
	"todo-web/pkg/storage/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s, err := memory.New(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, err := s.Get(ctx, "a"); err != nil || v != "1" {
		t.Errorf("expected 1, got %q (%v)", v, err)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	t.Run("evicts least recently used", func(t *testing.T) {
		s.Set(ctx, "x", "1")
		s.Set(ctx, "y", "2")
		s.Set(ctx, "z", "3")
		if _, err := s.Get(ctx, "x"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected x to be evicted")
		}
	})

	t.Run("ttl expires", func(t *testing.T) {
		if err := s.SetTTL(ctx, "short", "v", 20*time.Millisecond); err != nil {
			t.Fatalf("set ttl: %v", err)
		}
		if v, err := s.Get(ctx, "short"); err != nil || v != "v" {
			t.Fatalf("expected v before expiry, got %q (%v)", v, err)
		}
		time.Sleep(50 * time.Millisecond)
		if _, err := s.Get(ctx, "short"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after expiry, got %v", err)
		}
	})

	t.Run("non-positive ttl never expires", func(t *testing.T) {
		s.SetTTL(ctx, "forever", "v", 0)
		time.Sleep(10 * time.Millisecond)
		if v, err := s.Get(ctx, "forever"); err != nil || v != "v" {
			t.Errorf("expected v, got %q (%v)", v, err)
		}
	})

	t.Run("default size", func(t *testing.T) {
		if _, err := memory.New(0); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
