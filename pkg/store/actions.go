package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ghfinder/pkg/errors"
	"github.com/matzehuels/ghfinder/pkg/integrations/github"
	"github.com/matzehuels/ghfinder/pkg/observability"
)

// Messages stored in state when an operation cannot produce a better one.
const (
	MsgEmptyQuery   = "Please enter a search term"
	MsgUnknownError = "An unknown error occurred"
)

// Action names reported to [observability.StoreHooks].
const (
	ActionSearchUsers        = "searchUsers"
	ActionLoadUserProfile    = "loadUserProfile"
	ActionClearSearchResults = "clearSearchResults"
	ActionClearUserProfile   = "clearUserProfile"
)

// SearchUsers searches GitHub for query and stores the first page of results.
//
// A query that is empty after trimming is rejected without a network call:
// the search error is set to [MsgEmptyQuery] and Loading is left untouched.
// Otherwise the previous error is cleared, Loading is set, and the trimmed
// query is searched. On success the query and results replace the previous
// ones; on failure the error message is stored and results are emptied.
// Loading is cleared last.
func (s *Store) SearchUsers(ctx context.Context, query string) {
	done := s.begin(ctx, ActionSearchUsers, query)

	q := strings.TrimSpace(query)
	if q == "" {
		err := errors.New(errors.ErrCodeInvalidInput, MsgEmptyQuery)
		s.commit(setSearchError(err.Message))
		done(err)
		return
	}

	s.commit(setSearchError(""), setSearchLoading(true))

	res, err := s.api.SearchUsers(ctx, q, 1, s.perPage)
	if err != nil {
		s.commit(setSearchError(messageOf(err)), setSearchResults(nil))
	} else {
		s.commit(setSearchQuery(q), setSearchResults(res.Items))
	}

	s.commit(setSearchLoading(false))
	done(err)
}

// LoadUserProfile loads the user's profile, top repositories, and profile
// README concurrently and waits for all three.
//
// If the user or repository fetch fails, the profile fields keep their
// previous values and the error message is stored. Otherwise all three are
// committed together. A missing README is not a failure. Loading is cleared
// last in both cases.
func (s *Store) LoadUserProfile(ctx context.Context, username string) {
	done := s.begin(ctx, ActionLoadUserProfile, username)

	s.commit(setUserLoading(true), setUserError(""))

	p, err := s.fetchProfile(ctx, username)
	if err != nil {
		s.commit(setUserError(messageOf(err)))
	} else {
		s.commit(p.mutations()...)
	}

	s.commit(setUserLoading(false))
	done(err)
}

// ClearSearchResults resets the search slice to its initial state.
func (s *Store) ClearSearchResults() {
	done := s.begin(context.Background(), ActionClearSearchResults, "")
	s.commit(clearSearch())
	done(nil)
}

// ClearUserProfile resets the profile slice to its initial state.
func (s *Store) ClearUserProfile() {
	done := s.begin(context.Background(), ActionClearUserProfile, "")
	s.commit(clearUserData())
	done(nil)
}

// profile is the result of the three profile fetches, committed as a unit.
type profile struct {
	user   *github.User
	repos  []github.Repository
	readme *string
}

func (p *profile) mutations() []mutation {
	return []mutation{
		setSelectedUser(p.user),
		setUserRepositories(p.repos),
		setUserReadme(p.readme),
	}
}

// fetchProfile runs the three fetches concurrently and waits for all of
// them, even after one has failed. It returns the first error reported.
func (s *Store) fetchProfile(ctx context.Context, username string) (*profile, error) {
	var (
		g errgroup.Group
		p profile
	)

	g.Go(func() error {
		u, err := s.api.GetUser(ctx, username)
		p.user = u
		return err
	})
	g.Go(func() error {
		repos, err := s.api.GetUserRepositories(ctx, username)
		p.repos = repos
		return err
	})
	g.Go(func() error {
		if text, ok := s.api.GetUserReadme(ctx, username); ok {
			p.readme = &text
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}

// begin reports the start of an action and returns a func that reports its
// completion.
func (s *Store) begin(ctx context.Context, action, arg string) func(error) {
	id := uuid.NewString()
	start := time.Now()
	observability.Store().OnActionStart(ctx, id, action, arg)
	return func(err error) {
		observability.Store().OnActionComplete(ctx, id, action, time.Since(start), err)
	}
}

func messageOf(err error) string {
	if msg := errors.UserMessage(err); msg != "" {
		return msg
	}
	return MsgUnknownError
}
