package store

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/matzehuels/ghfinder/pkg/errors"
	"github.com/matzehuels/ghfinder/pkg/integrations/github"
)

func TestSearchUsers_Success(t *testing.T) {
	var gotQuery string
	api := &fakeAPI{search: func(_ context.Context, q string, page, _ int) (*github.SearchResult, error) {
		gotQuery = q
		if page != 1 {
			t.Errorf("page = %d, want 1", page)
		}
		return &github.SearchResult{
			TotalCount: 2,
			Items:      []github.User{{Login: "octocat"}, {Login: "octodog"}},
		}, nil
	}}
	s := New(api)

	s.SearchUsers(context.Background(), "  octo  ")

	if gotQuery != "octo" {
		t.Errorf("client query = %q, want trimmed %q", gotQuery, "octo")
	}
	st := s.Snapshot().Search
	if st.Query != "octo" {
		t.Errorf("Query = %q, want %q", st.Query, "octo")
	}
	if len(st.Results) != 2 || st.Results[0].Login != "octocat" || st.Results[1].Login != "octodog" {
		t.Errorf("Results = %+v", st.Results)
	}
	if st.Loading {
		t.Error("Loading = true after completion")
	}
	if st.Error != "" {
		t.Errorf("Error = %q, want empty", st.Error)
	}
	if !s.HasSearchResults() {
		t.Error("HasSearchResults() = false")
	}
}

func TestSearchUsers_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		api := &fakeAPI{}
		s := New(api)

		var sawLoading bool
		s.Subscribe(func(st State) {
			if st.Search.Loading {
				sawLoading = true
			}
		})

		s.SearchUsers(context.Background(), q)

		if calls := api.calls(); len(calls) != 0 {
			t.Errorf("SearchUsers(%q) issued %d network calls", q, len(calls))
		}
		st := s.Snapshot().Search
		if st.Error != MsgEmptyQuery {
			t.Errorf("SearchUsers(%q) Error = %q, want %q", q, st.Error, MsgEmptyQuery)
		}
		if st.Loading || sawLoading {
			t.Errorf("SearchUsers(%q) should never set Loading", q)
		}
	}
}

func TestSearchUsers_Failure(t *testing.T) {
	cause := stderrors.New("dial tcp: i/o timeout")
	api := &fakeAPI{search: func(context.Context, string, int, int) (*github.SearchResult, error) {
		return nil, errors.Wrap(errors.ErrCodeSearchFailed, cause, github.MsgSearchFailed)
	}}
	s := New(api)
	s.commit(setSearchQuery("old"), setSearchResults([]github.User{{Login: "stale"}}))

	s.SearchUsers(context.Background(), "octocat")

	st := s.Snapshot().Search
	if st.Error != github.MsgSearchFailed {
		t.Errorf("Error = %q, want %q", st.Error, github.MsgSearchFailed)
	}
	if len(st.Results) != 0 {
		t.Errorf("Results = %v, want empty after failure", st.Results)
	}
	if st.Query != "old" {
		t.Errorf("Query = %q, want unchanged %q", st.Query, "old")
	}
	if st.Loading {
		t.Error("Loading = true after failure")
	}
}

func TestSearchUsers_FailureWithoutMessage(t *testing.T) {
	api := &fakeAPI{search: func(context.Context, string, int, int) (*github.SearchResult, error) {
		return nil, &errors.Error{Code: errors.ErrCodeSearchFailed}
	}}
	s := New(api)

	s.SearchUsers(context.Background(), "octocat")

	if got := s.Snapshot().Search.Error; got != MsgUnknownError {
		t.Errorf("Error = %q, want %q", got, MsgUnknownError)
	}
}

func TestSearchUsers_ClearsPreviousError(t *testing.T) {
	s := New(&fakeAPI{})
	s.SearchUsers(context.Background(), "")
	if s.Snapshot().Search.Error == "" {
		t.Fatal("expected validation error")
	}

	s.SearchUsers(context.Background(), "octocat")
	if got := s.Snapshot().Search.Error; got != "" {
		t.Errorf("Error = %q, want cleared", got)
	}
}

func TestSearchUsers_LoadingSequence(t *testing.T) {
	for _, fail := range []bool{false, true} {
		var s *Store
		var loadingDuringCall bool
		api := &fakeAPI{search: func(context.Context, string, int, int) (*github.SearchResult, error) {
			loadingDuringCall = s.Snapshot().Search.Loading
			if fail {
				return nil, errors.New(errors.ErrCodeSearchFailed, github.MsgSearchFailed)
			}
			return &github.SearchResult{Items: []github.User{{Login: "octocat"}}}, nil
		}}
		s = New(api)

		var states []SearchState
		s.Subscribe(func(st State) { states = append(states, st.Search) })

		s.SearchUsers(context.Background(), "octocat")

		if !loadingDuringCall {
			t.Errorf("fail=%v: Loading was false while the request was in flight", fail)
		}
		last := states[len(states)-1]
		if last.Loading {
			t.Errorf("fail=%v: final Loading = true", fail)
		}
		// The outcome must be committed before Loading is cleared.
		for _, st := range states[:len(states)-1] {
			if !st.Loading {
				t.Errorf("fail=%v: Loading cleared before commit: %+v", fail, st)
			}
		}
		if fail && last.Error == "" {
			t.Errorf("fail=%v: final Error empty", fail)
		}
		if !fail && len(last.Results) != 1 {
			t.Errorf("fail=%v: final Results = %v", fail, last.Results)
		}
	}
}

func TestLoadUserProfile_Success(t *testing.T) {
	api := &fakeAPI{
		user: func(_ context.Context, username string) (*github.User, error) {
			return &github.User{Login: username, Name: "The Octocat"}, nil
		},
		repos: func(context.Context, string) ([]github.Repository, error) {
			repos := []github.Repository{
				{Name: "a", StarCount: 10},
				{Name: "b", StarCount: 50},
				{Name: "c", StarCount: 30},
				{Name: "d", StarCount: 5},
				{Name: "e", StarCount: 90},
			}
			return github.TopByStars(repos, github.TopRepoCount), nil
		},
		readme: func(context.Context, string) (string, bool) {
			return "# Hi", true
		},
	}
	s := New(api)

	s.LoadUserProfile(context.Background(), "octocat")

	st := s.Snapshot().Profile
	if st.SelectedUser == nil || st.SelectedUser.Login != "octocat" {
		t.Fatalf("SelectedUser = %+v", st.SelectedUser)
	}
	wantStars := []int{90, 50, 30}
	if len(st.Repositories) != len(wantStars) {
		t.Fatalf("len(Repositories) = %d, want 3", len(st.Repositories))
	}
	for i, want := range wantStars {
		if st.Repositories[i].StarCount != want {
			t.Errorf("Repositories[%d].StarCount = %d, want %d", i, st.Repositories[i].StarCount, want)
		}
	}
	if st.Readme == nil || *st.Readme != "# Hi" {
		t.Errorf("Readme = %v, want %q", st.Readme, "# Hi")
	}
	if st.Error != "" {
		t.Errorf("Error = %q, want empty", st.Error)
	}
	if st.Loading {
		t.Error("Loading = true after completion")
	}
	if !s.HasSelectedUser() {
		t.Error("HasSelectedUser() = false")
	}
}

func TestLoadUserProfile_NoReadme(t *testing.T) {
	s := New(&fakeAPI{})

	s.LoadUserProfile(context.Background(), "octocat")

	st := s.Snapshot().Profile
	if st.SelectedUser == nil {
		t.Fatal("SelectedUser = nil, want loaded user")
	}
	if st.Readme != nil {
		t.Errorf("Readme = %q, want nil", *st.Readme)
	}
	if st.Error != "" {
		t.Errorf("Error = %q, want empty", st.Error)
	}
}

func TestLoadUserProfile_AllOrNothing(t *testing.T) {
	userErr := errors.New(errors.ErrCodeUserFetchFailed, github.MsgUserFetchFailed)
	repoErr := errors.New(errors.ErrCodeRepoFetchFailed, github.MsgRepoFetchFailed)

	tests := []struct {
		name    string
		userErr error
		repoErr error
		wantMsg string
	}{
		{"user fails", userErr, nil, github.MsgUserFetchFailed},
		{"repos fail", nil, repoErr, github.MsgRepoFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{
				user: func(_ context.Context, username string) (*github.User, error) {
					if tt.userErr != nil {
						return nil, tt.userErr
					}
					return &github.User{Login: username}, nil
				},
				repos: func(context.Context, string) ([]github.Repository, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return []github.Repository{{Name: "new"}}, nil
				},
				readme: func(context.Context, string) (string, bool) { return "new readme", true },
			}
			s := New(api)

			oldReadme := "old readme"
			s.commit(
				setSelectedUser(&github.User{Login: "previous"}),
				setUserRepositories([]github.Repository{{Name: "old"}}),
				setUserReadme(&oldReadme),
			)

			var partial bool
			s.Subscribe(func(st State) {
				if st.Profile.SelectedUser != nil && st.Profile.SelectedUser.Login != "previous" {
					partial = true
				}
			})

			s.LoadUserProfile(context.Background(), "octocat")

			st := s.Snapshot().Profile
			if partial {
				t.Error("a subscriber observed new profile data")
			}
			if st.SelectedUser == nil || st.SelectedUser.Login != "previous" {
				t.Errorf("SelectedUser = %+v, want unchanged", st.SelectedUser)
			}
			if len(st.Repositories) != 1 || st.Repositories[0].Name != "old" {
				t.Errorf("Repositories = %+v, want unchanged", st.Repositories)
			}
			if st.Readme == nil || *st.Readme != "old readme" {
				t.Errorf("Readme = %v, want unchanged", st.Readme)
			}
			if st.Error != tt.wantMsg {
				t.Errorf("Error = %q, want %q", st.Error, tt.wantMsg)
			}
			if st.Loading {
				t.Error("Loading = true after failure")
			}
		})
	}
}

func TestLoadUserProfile_Concurrent(t *testing.T) {
	// Each fetch waits until all three have started; serial dispatch would deadlock.
	var started sync.WaitGroup
	started.Add(3)
	barrier := func() {
		started.Done()
		started.Wait()
	}

	api := &fakeAPI{
		user: func(_ context.Context, username string) (*github.User, error) {
			barrier()
			return &github.User{Login: username}, nil
		},
		repos: func(context.Context, string) ([]github.Repository, error) {
			barrier()
			return nil, nil
		},
		readme: func(context.Context, string) (string, bool) {
			barrier()
			return "", false
		},
	}

	New(api).LoadUserProfile(context.Background(), "octocat")
}

func TestLoadUserProfile_WaitsForAll(t *testing.T) {
	release := make(chan struct{})
	var readmeDone bool

	api := &fakeAPI{
		user: func(context.Context, string) (*github.User, error) {
			return nil, errors.New(errors.ErrCodeUserFetchFailed, github.MsgUserFetchFailed)
		},
		readme: func(context.Context, string) (string, bool) {
			<-release
			readmeDone = true
			return "", false
		},
	}
	s := New(api)

	finished := make(chan struct{})
	go func() {
		s.LoadUserProfile(context.Background(), "octocat")
		close(finished)
	}()

	select {
	case <-finished:
		t.Fatal("LoadUserProfile returned before all fetches settled")
	default:
	}
	close(release)
	<-finished

	if !readmeDone {
		t.Error("readme fetch did not complete")
	}
	if st := s.Snapshot().Profile; st.Loading || st.Error == "" {
		t.Errorf("profile = %+v, want error and not loading", st)
	}
}

func TestLoadUserProfile_LoadingSequence(t *testing.T) {
	var s *Store
	var loadingDuringCall bool
	api := &fakeAPI{user: func(_ context.Context, username string) (*github.User, error) {
		loadingDuringCall = s.Snapshot().Profile.Loading
		return &github.User{Login: username}, nil
	}}
	s = New(api)
	s.commit(setUserError("previous"))

	var states []ProfileState
	s.Subscribe(func(st State) { states = append(states, st.Profile) })

	s.LoadUserProfile(context.Background(), "octocat")

	if !loadingDuringCall {
		t.Error("Loading was false while fetches were in flight")
	}
	if first := states[0]; !first.Loading || first.Error != "" {
		t.Errorf("first notification = %+v, want loading with cleared error", first)
	}
	for _, st := range states[:len(states)-1] {
		if !st.Loading {
			t.Errorf("Loading cleared before commit: %+v", st)
		}
	}
	if last := states[len(states)-1]; last.Loading || last.SelectedUser == nil {
		t.Errorf("last notification = %+v, want committed and not loading", last)
	}
}
