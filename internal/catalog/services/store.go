package services

import (
	"context"
	"sync"

	"github.com/architect/city-events/internal/catalog/models"
	"github.com/architect/city-events/pkg/metrics"
)

// Store is the stateful Event Catalog Store backing a session: it holds the
// catalog for the currently selected city and is reloaded on every city
// change. Loads are last-write-wins by request: a result arriving for a
// city that is no longer the latest request is dropped, so a slow load for
// city A can never overwrite the catalog after city B was selected. On
// failure the store keeps its previous contents (stale but valid) and
// exposes the error.
type Store struct {
	service *CatalogService

	mu         sync.RWMutex
	generation uint64
	city       models.City
	events     []models.Event
	universe   []string
	lastErr    error
}

func NewStore(service *CatalogService) *Store {
	return &Store{service: service}
}

// Load fetches the catalog for a city. Blocks until the collaborator
// responds; safe to call concurrently from superseding city changes.
func (s *Store) Load(ctx context.Context, city models.City) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	events, _, err := s.service.LoadCatalog(ctx, city)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		// A newer load was requested while this one was in flight.
		metrics.CatalogStaleDrops.Inc()
		return nil
	}

	if err != nil {
		s.lastErr = err
		return err
	}

	s.city = city
	s.events = events
	s.universe = CategoryUniverse(events)
	s.lastErr = nil
	return nil
}

// City returns the city of the currently held catalog
func (s *Store) City() models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.city
}

// Events returns a copy of the held catalog in load order
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	return events
}

// CategoryUniverse returns the distinct categories of the held catalog
func (s *Store) CategoryUniverse() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	universe := make([]string, len(s.universe))
	copy(universe, s.universe)
	return universe
}

// Err returns the error of the most recent load, nil after a success
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
