// Package session provides the token store implementations behind the auth
// provider: an in-process store for ephemeral sessions and a SQLite-backed
// store that survives restarts.
package session

import (
	"context"
	"sync"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// MemoryStore keeps the bearer token in process memory. Sessions end when
// the process does.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

var _ interfaces.TokenStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-process token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
