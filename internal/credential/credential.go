package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"todo-web/internal/model"
	pkgLog "todo-web/pkg/log"
	"todo-web/pkg/storage"
)

// SlotAccessToken is the slot name the bearer token lives under.
const SlotAccessToken = "accessToken"

// Store holds one bearer token per session.
type Store interface {
	Get(ctx context.Context, sc model.Scope) (string, bool, error)
	Set(ctx context.Context, sc model.Scope, token string) error
	Clear(ctx context.Context, sc model.Scope) error
}

type implStore struct {
	kv storage.Storage
	l  pkgLog.Logger
}

// New creates a Store on top of kv.
func New(kv storage.Storage, l pkgLog.Logger) Store {
	return &implStore{kv: kv, l: l}
}

func slotKey(sc model.Scope) string {
	return fmt.Sprintf("session:%s:%s", sc.SessionID, SlotAccessToken)
}

// Get returns the session's token. A value that does not decode is reported as absent.
func (s *implStore) Get(ctx context.Context, sc model.Scope) (string, bool, error) {
	raw, err := s.kv.Get(ctx, slotKey(sc))
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("credential get: %w", err)
	}

	var token string
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		s.l.Warnf(ctx, "credential: undecodable value for session %s: %v", sc.SessionID, err)
		return "", false, nil
	}
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *implStore) Set(ctx context.Context, sc model.Scope, token string) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("credential encode: %w", err)
	}
	if err := s.kv.Set(ctx, slotKey(sc), string(raw)); err != nil {
		return fmt.Errorf("credential set: %w", err)
	}
	return nil
}

func (s *implStore) Clear(ctx context.Context, sc model.Scope) error {
	if err := s.kv.Delete(ctx, slotKey(sc)); err != nil {
		return fmt.Errorf("credential clear: %w", err)
	}
	return nil
}
