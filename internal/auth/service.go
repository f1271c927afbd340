package auth

import (
	"context"
	"sync"

	"github.com/architect/city-events/pkg/logger"
)

// Service tracks the session's current user on top of a Provider and fans
// auth state transitions out to subscribers. Login and logout effects are
// observed through the callbacks as well as the returned error.
type Service struct {
	provider Provider

	mu        sync.RWMutex
	current   *User
	token     string
	callbacks map[int]Callback
	nextID    int
}

func NewService(provider Provider) *Service {
	return &Service{
		provider:  provider,
		callbacks: make(map[int]Callback),
	}
}

// CurrentUser returns the signed-in user, nil when signed out
func (s *Service) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the active session token, empty when signed out
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// OnAuthStateChange registers a callback invoked on every transition.
// Returns an unsubscribe function.
func (s *Service) OnAuthStateChange(cb Callback) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.callbacks[id] = cb
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.callbacks, id)
		s.mu.Unlock()
	}
}

// Login opens a session for the username. Subscribers see a loading
// transition first, then the signed-in (or reverted signed-out) state.
func (s *Service) Login(ctx context.Context, username string) (*User, string, error) {
	s.notify(State{User: nil, IsLoading: true})

	user, token, err := s.provider.Login(ctx, username)
	if err != nil {
		s.notify(State{User: nil, IsLoading: false})
		return nil, "", err
	}

	s.mu.Lock()
	s.current = user
	s.token = token
	s.mu.Unlock()

	logger.Log.Sugar().Infow("user signed in", "user_id", user.ID)
	s.notify(State{User: user, IsLoading: false})
	return user, token, nil
}

// Logout closes the current session. The signed-out state is delivered to
// subscribers even if the collaborator call fails.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	err := s.provider.Logout(ctx, token)
	s.notify(State{User: nil, IsLoading: false})
	return err
}

// ResolveToken maps a session token to a user id for the auth middleware
func (s *Service) ResolveToken(token string) (string, bool) {
	user, err := s.provider.UserForToken(context.Background(), token)
	if err != nil || user == nil {
		return "", false
	}
	return user.ID, true
}

func (s *Service) notify(state State) {
	s.mu.RLock()
	callbacks := make([]Callback, 0, len(s.callbacks))
	for _, cb := range s.callbacks {
		callbacks = append(callbacks, cb)
	}
	s.mu.RUnlock()

	for _, cb := range callbacks {
		cb(state)
	}
}
