package services

import (
	"context"
	"sync"
	"time"

	"github.com/architect/city-events/internal/favorites/repository"
)

// Manager hands out the per-user favorites store, loading it from the
// persisted collection on first access. Stores are cached so the optimistic
// set survives across requests.
type Manager struct {
	repo         repository.FavoriteRepository
	writeTimeout time.Duration

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(repo repository.FavoriteRepository, writeTimeout time.Duration) *Manager {
	return &Manager{
		repo:         repo,
		writeTimeout: writeTimeout,
		stores:       make(map[string]*Store),
	}
}

// StoreFor returns the favorites store for a user. The first access loads
// the set; a load failure returns the store (empty, stale-but-valid) along
// with the error so the caller can report and retry.
func (m *Manager) StoreFor(ctx context.Context, userID string) (*Store, error) {
	m.mu.Lock()
	store, ok := m.stores[userID]
	if !ok {
		store = NewStore(m.repo, userID, m.writeTimeout)
		m.stores[userID] = store
	}
	m.mu.Unlock()

	if !ok {
		if err := store.Load(ctx); err != nil {
			return store, err
		}
	}
	return store, nil
}

// Evict drops the cached store for a user, forcing a fresh load next time.
// Called on logout.
func (m *Manager) Evict(userID string) {
	m.mu.Lock()
	delete(m.stores, userID)
	m.mu.Unlock()
}
