package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

const defaultPerPage = 10

// API is the subset of the GitHub client the store depends on.
// [*github.Client] satisfies it.
type API interface {
	SearchUsers(ctx context.Context, query string, page, perPage int) (*github.SearchResult, error)
	GetUser(ctx context.Context, username string) (*github.User, error)
	GetUserRepositories(ctx context.Context, username string) ([]github.Repository, error)
	GetUserReadme(ctx context.Context, username string) (string, bool)
}

// Store owns the application [State]. Create one per view session with [New]
// and share it between the views of that session.
//
// Store is safe for concurrent use.
type Store struct {
	api     API
	perPage int

	// notifyMu serializes mutate-then-notify so subscribers see mutations in
	// commit order. mu guards state and subs.
	notifyMu sync.Mutex
	mu       sync.Mutex
	state    State
	subs     []subscriber
	nextSub  uint64
}

type subscriber struct {
	id uint64
	fn func(State)
}

// Option configures a Store.
type Option func(*Store)

// WithPerPage sets the page size used by [Store.SearchUsers]. Values below 1
// are ignored.
func WithPerPage(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// New creates a Store with empty state backed by api.
func New(api API, opts ...Option) *Store {
	s := &Store{
		api:     api,
		perPage: defaultPerPage,
		state:   initialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive the new state after every mutation.
// fn runs synchronously on the goroutine that performed the mutation and must
// not call store operations itself. The returned func removes the
// subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
		})
	}
}

// HasSearchResults reports whether the search slice holds any results.
func (s *Store) HasSearchResults() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasSearchResults()
}

// HasSelectedUser reports whether a profile has been loaded.
func (s *Store) HasSelectedUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasSelectedUser()
}

// TopRepositories returns at most three repositories of the loaded profile.
func (s *Store) TopRepositories() []github.Repository {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TopRepositories()
}

// commit applies muts atomically, in order, and then notifies subscribers
// once with the resulting state.
func (s *Store) commit(muts ...mutation) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	for _, m := range muts {
		m(&s.state)
	}
	snap := s.state
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap.clone())
	}
}
