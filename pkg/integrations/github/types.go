package github

// User is a snapshot of a GitHub user. Search results only populate the
// identity fields (ID, Login, AvatarURL, ProfileURL); the profile endpoint
// fills in the rest. Name and Bio are empty when the user hasn't set them.
type User struct {
	ID              int64  `json:"id"`
	Login           string `json:"login"`
	AvatarURL       string `json:"avatar_url"`
	ProfileURL      string `json:"profile_url"`
	Name            string `json:"name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	PublicRepoCount int    `json:"public_repos"`
	FollowerCount   int    `json:"followers"`
	FollowingCount  int    `json:"following"`
}

// Repository is a public repository shown on a profile.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	StarCount   int    `json:"stars"`
	URL         string `json:"url"`
	Language    string `json:"language,omitempty"`
}

// SearchResult is one page of a user search, in GitHub's rank order.
type SearchResult struct {
	TotalCount   int    `json:"total_count"`
	IsIncomplete bool   `json:"incomplete_results"`
	Items        []User `json:"items"`
}

// apiUserResponse is the GitHub API user object (search items and /users/{login}).
type apiUserResponse struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

func (r apiUserResponse) toUser() User {
	return User{
		ID:              r.ID,
		Login:           r.Login,
		AvatarURL:       r.AvatarURL,
		ProfileURL:      r.HTMLURL,
		Name:            deref(r.Name),
		Bio:             deref(r.Bio),
		PublicRepoCount: r.PublicRepos,
		FollowerCount:   r.Followers,
		FollowingCount:  r.Following,
	}
}

type searchUsersResponse struct {
	TotalCount        int               `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []apiUserResponse `json:"items"`
}

// apiRepoResponse is the GitHub API repository object.
type apiRepoResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Stars       int     `json:"stargazers_count"`
	HTMLURL     string  `json:"html_url"`
	Language    *string `json:"language"`
}

func (r apiRepoResponse) toRepository() Repository {
	return Repository{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: deref(r.Description),
		StarCount:   r.Stars,
		URL:         r.HTMLURL,
		Language:    deref(r.Language),
	}
}

// apiContentResponse is the GitHub API response for file content.
type apiContentResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
