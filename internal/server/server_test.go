package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
	"github.com/matzehuels/ghfinder/pkg/store"
)

// fakeGitHub serves a minimal GitHub API with one user, octocat. The user
// ghost has a repository listing but no profile.
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "explode" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"total_count": 1, "items": [{"id": 1, "login": "octocat"}]}`))
	})
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "login": "octocat", "name": "The Octocat", "followers": 3}`))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "a", "stargazers_count": 10},
			{"id": 2, "name": "b", "stargazers_count": 50},
			{"id": 3, "name": "c", "stargazers_count": 30},
			{"id": 4, "name": "d", "stargazers_count": 5},
			{"id": 5, "name": "e", "stargazers_count": 90}
		]`))
	})
	mux.HandleFunc("/users/ghost/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/repos/octocat/octocat/readme", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": "SGVs\nbG8=", "encoding": "base64"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	gh := fakeGitHub(t)
	s := New(Config{PerPage: 10}, github.NewClient(gh.URL), log.New(io.Discard))
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	var body map[string]string
	if status := get(t, srv.URL+"/healthz", &body); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestSearch(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantResults int
		wantError   string
	}{
		{"found", "octo", http.StatusOK, 1, ""},
		{"empty", "", http.StatusBadRequest, 0, store.MsgEmptyQuery},
		{"blank", "%20%20", http.StatusBadRequest, 0, store.MsgEmptyQuery},
		{"upstream failure", "explode", http.StatusBadGateway, 0, github.MsgSearchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Query            string        `json:"query"`
				Results          []github.User `json:"results"`
				Loading          bool          `json:"loading"`
				Error            string        `json:"error"`
				HasSearchResults bool          `json:"has_search_results"`
			}
			status := get(t, srv.URL+"/api/search?q="+tt.query, &body)

			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if len(body.Results) != tt.wantResults {
				t.Errorf("len(results) = %d, want %d", len(body.Results), tt.wantResults)
			}
			if body.HasSearchResults != (tt.wantResults > 0) {
				t.Errorf("has_search_results = %v", body.HasSearchResults)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if body.Loading {
				t.Error("loading = true in response")
			}
		})
	}
}

func TestProfile(t *testing.T) {
	srv := testServer(t)

	var body struct {
		SelectedUser    *github.User        `json:"selected_user"`
		Repositories    []github.Repository `json:"repositories"`
		Readme          *string             `json:"readme"`
		Error           string              `json:"error"`
		HasSelectedUser bool                `json:"has_selected_user"`
		TopRepositories []github.Repository `json:"top_repositories"`
	}
	status := get(t, srv.URL+"/api/users/octocat", &body)

	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (error %q)", status, body.Error)
	}
	if !body.HasSelectedUser || body.SelectedUser == nil || body.SelectedUser.Name != "The Octocat" {
		t.Errorf("selected_user = %+v", body.SelectedUser)
	}
	if len(body.TopRepositories) != 3 || body.TopRepositories[0].StarCount != 90 {
		t.Errorf("top_repositories = %+v", body.TopRepositories)
	}
	if body.Readme == nil || *body.Readme != "Hello" {
		t.Errorf("readme = %v, want Hello", body.Readme)
	}
}

func TestProfileNotFound(t *testing.T) {
	srv := testServer(t)

	var body struct {
		SelectedUser    *github.User `json:"selected_user"`
		Error           string       `json:"error"`
		HasSelectedUser bool         `json:"has_selected_user"`
	}
	status := get(t, srv.URL+"/api/users/ghost", &body)

	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if body.Error != github.MsgUserFetchFailed {
		t.Errorf("error = %q, want %q", body.Error, github.MsgUserFetchFailed)
	}
	if body.HasSelectedUser || body.SelectedUser != nil {
		t.Error("no user should be selected after a failed load")
	}
}

func TestProfileInvalidUsername(t *testing.T) {
	srv := testServer(t)

	var body errorResponse
	status := get(t, srv.URL+"/api/users/-bad-", &body)

	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if body.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", body.Code)
	}
}
