// Package pkg provides the core libraries for ghfinder, a GitHub user search
// and profile viewer.
//
// # Overview
//
// ghfinder looks up GitHub users by name and shows a profile page with the
// user's details, their three most-starred repositories and the README of
// their profile repository. The pkg directory is organized into:
//
//  1. [integrations] - Shared HTTP client and the GitHub API client
//  2. [store] - Application state: search and profile slices, the
//     operations that fill them, and subscriptions for views
//  3. [errors] - Structured errors with codes and user-facing messages
//  4. [observability] - Hooks for HTTP and store events
//  5. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The data flow for one profile page:
//
//	view (CLI, terminal UI, JSON server)
//	         ↓
//	    [store] LoadUserProfile
//	         ↓  three concurrent requests
//	    [integrations/github] GetUser, GetUserRepositories, GetUserReadme
//	         ↓
//	    [store] commits user, top repositories and README together
//	         ↓
//	view re-renders from the new state
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/ghfinder/pkg/integrations/github"
//	    "github.com/matzehuels/ghfinder/pkg/store"
//	)
//
//	st := store.New(github.NewClient(github.DefaultBaseURL))
//	st.SearchUsers(context.Background(), "torvalds")
//
//	state := st.Snapshot()
//	if state.Search.Error != "" {
//	    // show state.Search.Error
//	}
//	for _, u := range state.Search.Results {
//	    fmt.Println(u.Login, u.ProfileURL)
//	}
//
// Views that re-render on every change register with [store.Store.Subscribe].
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/ghfinder/pkg/integrations
// [store]: https://pkg.go.dev/github.com/matzehuels/ghfinder/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/ghfinder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ghfinder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ghfinder/pkg/buildinfo
package pkg
