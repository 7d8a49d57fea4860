package store

import (
	"slices"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

// State is the complete application state.
type State struct {
	Search  SearchState  `json:"search"`
	Profile ProfileState `json:"profile"`
}

// SearchState is the search slice. Error is empty when there is no error.
type SearchState struct {
	Query   string        `json:"query"`
	Results []github.User `json:"results"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

// ProfileState is the profile slice. Readme is nil when the user has no
// profile README. Error is empty when there is no error.
type ProfileState struct {
	SelectedUser *github.User       `json:"selected_user"`
	Repositories []github.Repository `json:"repositories"`
	Readme       *string             `json:"readme"`
	Loading      bool                `json:"loading"`
	Error        string              `json:"error,omitempty"`
}

func initialSearch() SearchState {
	return SearchState{Results: []github.User{}}
}

func initialProfile() ProfileState {
	return ProfileState{Repositories: []github.Repository{}}
}

func initialState() State {
	return State{Search: initialSearch(), Profile: initialProfile()}
}

// HasSearchResults reports whether the search slice holds any results.
func (s State) HasSearchResults() bool {
	return len(s.Search.Results) > 0
}

// HasSelectedUser reports whether a profile has been loaded.
func (s State) HasSelectedUser() bool {
	return s.Profile.SelectedUser != nil
}

// TopRepositories returns at most the first [github.TopRepoCount] stored
// repositories, whatever the slice holds.
func (s State) TopRepositories() []github.Repository {
	repos := s.Profile.Repositories
	if len(repos) > github.TopRepoCount {
		repos = repos[:github.TopRepoCount]
	}
	return cloneOrEmpty(repos)
}

// SearchView is the search slice together with its derived getters, as a view
// reads it.
type SearchView struct {
	SearchState
	HasSearchResults bool `json:"has_search_results"`
}

// ProfileView is the profile slice together with its derived getters.
type ProfileView struct {
	ProfileState
	HasSelectedUser bool                `json:"has_selected_user"`
	TopRepositories []github.Repository `json:"top_repositories"`
}

// SearchView returns the search slice with its getters evaluated.
func (s State) SearchView() SearchView {
	return SearchView{SearchState: s.Search, HasSearchResults: s.HasSearchResults()}
}

// ProfileView returns the profile slice with its getters evaluated.
func (s State) ProfileView() ProfileView {
	return ProfileView{
		ProfileState:    s.Profile,
		HasSelectedUser: s.HasSelectedUser(),
		TopRepositories: s.TopRepositories(),
	}
}

// clone returns a deep copy so snapshots handed to views never alias store memory.
func (s State) clone() State {
	out := s
	out.Search.Results = cloneOrEmpty(s.Search.Results)
	out.Profile.Repositories = cloneOrEmpty(s.Profile.Repositories)
	if s.Profile.SelectedUser != nil {
		u := *s.Profile.SelectedUser
		out.Profile.SelectedUser = &u
	}
	if s.Profile.Readme != nil {
		r := *s.Profile.Readme
		out.Profile.Readme = &r
	}
	return out
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
