package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/favorites/models"
	"github.com/architect/city-events/internal/favorites/repository"
	"github.com/architect/city-events/pkg/metrics"
	"github.com/google/uuid"
)

// Store is the Favorites Store for one user: an in-memory set of favorited
// event ids mirroring the persisted favorites collection. Mutations are
// optimistic; a persistence failure rolls the local set back so set and
// storage never diverge. No automatic retry.
type Store struct {
	repo         repository.FavoriteRepository
	userID       string
	writeTimeout time.Duration

	mu  sync.RWMutex
	set map[string]string // event id -> favorite record id

	// One lock per event id serializes toggles on the same (user, event)
	// pair; toggles on different pairs proceed concurrently.
	pairMu    sync.Mutex
	pairLocks map[string]*sync.Mutex
}

// NewStore creates an unloaded favorites store for a user. An empty user id
// is the signed-out state: Load yields the empty set and toggles are
// rejected.
func NewStore(repo repository.FavoriteRepository, userID string, writeTimeout time.Duration) *Store {
	return &Store{
		repo:         repo,
		userID:       userID,
		writeTimeout: writeTimeout,
		set:          make(map[string]string),
		pairLocks:    make(map[string]*sync.Mutex),
	}
}

// Load refreshes the set from the persisted collection. Called on login and
// on city change. On failure the previous set is kept and a LoadError
// returned.
func (s *Store) Load(ctx context.Context) error {
	if s.userID == "" {
		s.mu.Lock()
		s.set = make(map[string]string)
		s.mu.Unlock()
		return nil
	}

	records, err := s.repo.ListByUser(ctx, s.userID)
	if err != nil {
		return err
	}

	set := make(map[string]string, len(records))
	for _, record := range records {
		set[record.EventID] = record.ID
	}

	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

// Toggle flips the favorite state of an event: exactly one persistence
// write (create or delete) per call. Returns the resulting state. The
// persistence call carries a bounded wait so a hung collaborator surfaces
// as an error instead of blocking the pair forever.
func (s *Store) Toggle(ctx context.Context, eventID string) (bool, error) {
	if s.userID == "" {
		return false, errors.Unauthorized("sign in to favorite events")
	}
	if eventID == "" {
		return false, errors.BadRequest("missing event id")
	}

	lock := s.lockFor(eventID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	s.mu.Lock()
	recordID, favorited := s.set[eventID]
	if favorited {
		// Optimistic removal, reverted if the delete fails.
		delete(s.set, eventID)
	} else {
		recordID = uuid.NewString()
		s.set[eventID] = recordID
	}
	s.mu.Unlock()

	if favorited {
		if err := s.repo.Delete(ctx, recordID); err != nil {
			s.mu.Lock()
			s.set[eventID] = recordID
			s.mu.Unlock()
			metrics.FavoriteToggles.WithLabelValues("delete", "error").Inc()
			return true, err
		}
		metrics.FavoriteToggles.WithLabelValues("delete", "success").Inc()
		return false, nil
	}

	record := &models.FavoriteRecord{
		ID:        recordID,
		UserID:    s.userID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.mu.Lock()
		delete(s.set, eventID)
		s.mu.Unlock()
		metrics.FavoriteToggles.WithLabelValues("create", "error").Inc()
		return false, err
	}
	metrics.FavoriteToggles.WithLabelValues("create", "success").Inc()
	return true, nil
}

// EventIDs returns the favorited event ids, sorted for stable output
func (s *Store) EventIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.set))
	for eventID := range s.set {
		ids = append(ids, eventID)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// IsFavorite reports whether the event is in the set
func (s *Store) IsFavorite(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.set[eventID]
	return ok
}

// UserID returns the user this store is scoped to
func (s *Store) UserID() string {
	return s.userID
}

func (s *Store) lockFor(eventID string) *sync.Mutex {
	s.pairMu.Lock()
	defer s.pairMu.Unlock()

	lock, ok := s.pairLocks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		s.pairLocks[eventID] = lock
	}
	return lock
}
