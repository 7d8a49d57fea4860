//go:build integration

package github

import (
	"context"
	"testing"
	"time"
)

func TestClient_Integration(t *testing.T) {
	client := NewClient("")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := client.SearchUsers(ctx, "octocat", 1, 5)
	if err != nil {
		t.Fatalf("SearchUsers() error: %v", err)
	}
	if len(res.Items) == 0 {
		t.Error("SearchUsers(octocat) returned no items")
	}

	user, err := client.GetUser(ctx, "octocat")
	if err != nil {
		t.Fatalf("GetUser() error: %v", err)
	}
	if user.Login != "octocat" {
		t.Errorf("Login = %q, want octocat", user.Login)
	}

	repos, err := client.GetUserRepositories(ctx, "octocat")
	if err != nil {
		t.Fatalf("GetUserRepositories() error: %v", err)
	}
	if len(repos) > TopRepoCount {
		t.Errorf("len(repos) = %d, want <= %d", len(repos), TopRepoCount)
	}

	if _, ok := client.GetUserReadme(ctx, "nonexistent-owner-12345-xyz"); ok {
		t.Error("GetUserReadme() should report absence for a missing user")
	}
}
