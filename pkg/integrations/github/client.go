package github

import (
	"cmp"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/ghfinder/pkg/errors"
	"github.com/matzehuels/ghfinder/pkg/integrations"
)

// DefaultBaseURL is the GitHub REST API v3 endpoint.
const DefaultBaseURL = "https://api.github.com"

const (
	defaultPage    = 1
	defaultPerPage = 10

	// reposPerPage sizes the repository listing so the local top-N sort sees
	// the whole first page rather than whatever order GitHub returned.
	reposPerPage = 100

	// TopRepoCount is the number of repositories kept per profile.
	TopRepoCount = 3
)

// User-facing messages. Transport details are kept as the error cause.
const (
	MsgSearchFailed    = "Failed to search users, please try again later"
	MsgUserFetchFailed = "Failed to fetch user information"
	MsgRepoFetchFailed = "Failed to fetch user repositories"
)

// Client provides access to the subset of the GitHub API used by profile
// search: user search, user lookup, top repositories, and the profile README.
// Requests are unauthenticated and subject to GitHub's anonymous rate limits.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. An empty baseURL selects
// [DefaultBaseURL]; a trailing slash is ignored.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/vnd.github.v3+json"}),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// SearchUsers runs a user search and returns one page of results in GitHub's
// rank order. page and perPage below 1 fall back to 1 and 10.
//
// Rejecting empty queries is the caller's job; the query is sent as given.
func (c *Client) SearchUsers(ctx context.Context, query string, page, perPage int) (*SearchResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var data searchUsersResponse
	if err := c.Get(ctx, c.baseURL+"/search/users?"+q.Encode(), &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSearchFailed, err, MsgSearchFailed)
	}

	result := &SearchResult{
		TotalCount:   data.TotalCount,
		IsIncomplete: data.IncompleteResults,
		Items:        make([]User, len(data.Items)),
	}
	for i, item := range data.Items {
		result.Items[i] = item.toUser()
	}
	return result, nil
}

// GetUser fetches a single user's public profile. A missing user and any
// other failure are reported the same way.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var data apiUserResponse
	if err := c.Get(ctx, c.userURL(username), &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUserFetchFailed, err, MsgUserFetchFailed)
	}
	u := data.toUser()
	return &u, nil
}

// GetUserRepositories returns the user's top repositories by star count,
// highest first, at most [TopRepoCount] entries. GitHub is asked to sort by
// stars, but the result is sorted again locally.
func (c *Client) GetUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	q := url.Values{}
	q.Set("sort", "stars")
	q.Set("direction", "desc")
	q.Set("per_page", strconv.Itoa(reposPerPage))

	var data []apiRepoResponse
	if err := c.Get(ctx, c.userURL(username)+"/repos?"+q.Encode(), &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRepoFetchFailed, err, MsgRepoFetchFailed)
	}

	repos := make([]Repository, len(data))
	for i, r := range data {
		repos[i] = r.toRepository()
	}
	return TopByStars(repos, TopRepoCount), nil
}

// GetUserReadme fetches the profile README, which GitHub serves from the
// repository named after its owner (octocat/octocat). ok is false when the
// README is unavailable for any reason, including the repository not
// existing; a missing README is not an error.
func (c *Client) GetUserReadme(ctx context.Context, username string) (readme string, ok bool) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(username), url.PathEscape(username))

	var data apiContentResponse
	if err := c.Get(ctx, u, &data); err != nil {
		return "", false
	}
	text, err := DecodeContent(data.Content)
	if err != nil {
		return "", false
	}
	return text, true
}

func (c *Client) userURL(username string) string {
	return c.baseURL + "/users/" + url.PathEscape(username)
}

// DecodeContent decodes a base64 content field from the contents API.
// GitHub wraps the payload at 60 columns, so all whitespace is removed
// before decoding.
func DecodeContent(content string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, content)

	b, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return string(b), nil
}

// TopByStars returns up to n repositories ordered by descending star count.
// Ties keep their input order. The input slice is not modified.
func TopByStars(repos []Repository, n int) []Repository {
	sorted := slices.Clone(repos)
	slices.SortStableFunc(sorted, func(a, b Repository) int {
		return cmp.Compare(b.StarCount, a.StarCount)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
