package memory

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"todo-web/pkg/storage"
)

// DefaultSize bounds the number of keys kept when no size is configured.
const DefaultSize = 10000

// Store keeps values in a bounded in-process LRU. Values do not survive a
// restart, so it is meant for development and tests.
type Store struct {
	cache *lru.Cache[string, entry]
}

type entry struct {
	value     string
	expiresAt time.Time // zero: never
}

var _ storage.Storage = (*Store)(nil)

// New creates a memory store holding at most size keys.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("memory storage: %w", err)
	}
	return &Store{cache: cache}, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	e, ok := s.cache.Get(key)
	if !ok {
		return "", storage.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !time.Now().Before(e.expiresAt) {
		s.cache.Remove(key)
		return "", storage.ErrNotFound
	}
	return e.value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.SetTTL(ctx, key, value, 0)
}

func (s *Store) SetTTL(_ context.Context, key, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.cache.Add(key, e)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}
