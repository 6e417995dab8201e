package paramcache

import (
	"context"
	"time"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	gets int
	sets int
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.gets++
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}
