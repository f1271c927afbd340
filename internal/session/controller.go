package session

import (
	"context"
	"math/rand"
	"sync"

	"github.com/architect/city-events/internal/auth"
	catalogModels "github.com/architect/city-events/internal/catalog/models"
	catalogServices "github.com/architect/city-events/internal/catalog/services"
	"github.com/architect/city-events/internal/common/errors"
	favoriteServices "github.com/architect/city-events/internal/favorites/services"
	"github.com/architect/city-events/pkg/logger"
	"github.com/architect/city-events/pkg/metrics"
)

// ChangeKind labels a session state transition for subscribers
type ChangeKind string

const (
	ChangeCity      ChangeKind = "city"
	ChangeUser      ChangeKind = "user"
	ChangeFilter    ChangeKind = "filter"
	ChangeSelection ChangeKind = "selection"
)

// Change is delivered to subscribers on every explicit state transition
type Change struct {
	Kind ChangeKind
}

// Subscriber receives session state transitions
type Subscriber func(Change)

// Controller owns one user session: the selected city, the filter state,
// the open selection and the random pick. State transitions happen only
// through explicit trigger methods, each of which notifies subscribers; no
// ambient globals, no implicit reactive bindings.
type Controller struct {
	catalog   *catalogServices.Store
	favorites *favoriteServices.Manager
	auth      *auth.Service

	mu          sync.RWMutex
	filter      catalogModels.FilterState
	selection   *catalogModels.Event
	favStore    *favoriteServices.Store
	subscribers map[int]Subscriber
	nextID      int
}

// NewController creates a session with default filter state. It subscribes
// to auth transitions so the favorites set follows login and logout.
func NewController(catalog *catalogServices.Store, favorites *favoriteServices.Manager, authService *auth.Service) *Controller {
	c := &Controller{
		catalog:     catalog,
		favorites:   favorites,
		auth:        authService,
		filter:      catalogModels.DefaultFilterState(),
		subscribers: make(map[int]Subscriber),
	}

	authService.OnAuthStateChange(func(state auth.State) {
		if state.IsLoading {
			return
		}
		c.onUserChanged(state.User)
	})

	return c
}

// Subscribe registers a subscriber for state transitions; returns an
// unsubscribe function.
func (c *Controller) Subscribe(fn Subscriber) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// SetCity switches the session to a city. Catalog and favorites reload
// concurrently and both complete before the visible set is authoritative
// again; a load superseded by a newer city change is dropped inside the
// catalog store.
func (c *Controller) SetCity(ctx context.Context, city catalogModels.City) error {
	var (
		wg         sync.WaitGroup
		catalogErr error
		favErr     error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		catalogErr = c.catalog.Load(ctx, city)
	}()

	user := c.auth.CurrentUser()
	if user != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store, err := c.favorites.StoreFor(ctx, user.ID)
			if err == nil {
				err = store.Load(ctx)
			}
			c.mu.Lock()
			c.favStore = store
			c.mu.Unlock()
			favErr = err
		}()
	}

	wg.Wait()

	// The open selection belongs to the previous city's catalog.
	c.mu.Lock()
	c.selection = nil
	c.mu.Unlock()

	c.notify(Change{Kind: ChangeCity})

	if catalogErr != nil {
		return catalogErr
	}
	return favErr
}

// onUserChanged swaps the favorites store after a login or logout
func (c *Controller) onUserChanged(user *auth.User) {
	var store *favoriteServices.Store
	if user != nil {
		var err error
		store, err = c.favorites.StoreFor(context.Background(), user.ID)
		if err != nil {
			logger.Log.Sugar().Warnw("favorites load failed on auth change", "user_id", user.ID, "error", err)
		}
	}

	c.mu.Lock()
	c.favStore = store
	c.mu.Unlock()

	c.notify(Change{Kind: ChangeUser})
}

// SetSearchQuery updates the free-text filter
func (c *Controller) SetSearchQuery(query string) {
	c.mu.Lock()
	c.filter.SearchQuery = query
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeFilter})
}

// SetCategories replaces the selected category set; empty means no
// category restriction.
func (c *Controller) SetCategories(categories []string) {
	c.mu.Lock()
	c.filter.SelectedCategories = append([]string(nil), categories...)
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeFilter})
}

// SetCostRange updates the inclusive cost constraint
func (c *Controller) SetCostRange(min, max float64) {
	c.mu.Lock()
	c.filter.CostRange = catalogModels.Range{Min: min, Max: max}
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeFilter})
}

// SetDurationRange updates the inclusive duration constraint
func (c *Controller) SetDurationRange(min, max float64) {
	c.mu.Lock()
	c.filter.DurationRange = catalogModels.Range{Min: min, Max: max}
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeFilter})
}

// ClearFilters resets the filter state to defaults
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	c.filter.Reset()
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeFilter})
}

// FilterState returns a copy of the current filter state
func (c *Controller) FilterState() catalogModels.FilterState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := c.filter
	state.SelectedCategories = append([]string(nil), c.filter.SelectedCategories...)
	return state
}

// Visible evaluates the filter engine over the current catalog
func (c *Controller) Visible() []catalogModels.Event {
	metrics.FilterEvaluations.Inc()
	return catalogServices.Visible(c.catalog.Events(), c.FilterState())
}

// Select opens an event's detail view; nil closes it
func (c *Controller) Select(event *catalogModels.Event) {
	c.mu.Lock()
	if event == nil {
		c.selection = nil
	} else {
		copied := *event
		c.selection = &copied
	}
	c.mu.Unlock()
	c.notify(Change{Kind: ChangeSelection})
}

// Selection returns the currently open event, nil when closed
func (c *Controller) Selection() *catalogModels.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.selection == nil {
		return nil
	}
	copied := *c.selection
	return &copied
}

// Surprise selects one event uniformly at random from the visible set. An
// empty visible set is a no-op: the current selection stays as it was.
func (c *Controller) Surprise() *catalogModels.Event {
	visible := c.Visible()
	if len(visible) == 0 {
		return c.Selection()
	}

	pick := visible[rand.Intn(len(visible))]
	c.Select(&pick)
	return c.Selection()
}

// Favorites returns the favorites store of the signed-in user, nil when
// signed out.
func (c *Controller) Favorites() *favoriteServices.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.favStore
}

// ToggleFavorite flips the favorite state of an event for the signed-in user
func (c *Controller) ToggleFavorite(ctx context.Context, eventID string) (bool, error) {
	store := c.Favorites()
	if store == nil {
		return false, errors.Unauthorized("sign in to favorite events")
	}
	return store.Toggle(ctx, eventID)
}

func (c *Controller) notify(change Change) {
	c.mu.RLock()
	subscribers := make([]Subscriber, 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.mu.RUnlock()

	for _, fn := range subscribers {
		fn(change)
	}
}
