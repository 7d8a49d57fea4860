package store

import "github.com/matzehuels/ghfinder/pkg/integrations/github"

// mutation is a synchronous state transition. The constructors below are the
// complete set; nothing else writes State fields.
type mutation func(*State)

// Search slice mutations.

func setSearchQuery(query string) mutation {
	return func(st *State) { st.Search.Query = query }
}

func setSearchResults(users []github.User) mutation {
	users = cloneOrEmpty(users)
	return func(st *State) { st.Search.Results = users }
}

func setSearchLoading(loading bool) mutation {
	return func(st *State) { st.Search.Loading = loading }
}

func setSearchError(msg string) mutation {
	return func(st *State) { st.Search.Error = msg }
}

func clearSearch() mutation {
	return func(st *State) { st.Search = initialSearch() }
}

// Profile slice mutations.

func setSelectedUser(user *github.User) mutation {
	return func(st *State) { st.Profile.SelectedUser = user }
}

func setUserRepositories(repos []github.Repository) mutation {
	repos = cloneOrEmpty(repos)
	return func(st *State) { st.Profile.Repositories = repos }
}

func setUserReadme(readme *string) mutation {
	return func(st *State) { st.Profile.Readme = readme }
}

func setUserLoading(loading bool) mutation {
	return func(st *State) { st.Profile.Loading = loading }
}

func setUserError(msg string) mutation {
	return func(st *State) { st.Profile.Error = msg }
}

func clearUserData() mutation {
	return func(st *State) { st.Profile = initialProfile() }
}
