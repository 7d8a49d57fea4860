// Package github provides the GitHub REST API client behind user search and
// profile pages.
//
// # Operations
//
// [Client] supports exactly four calls, each a single HTTP round trip:
//
//   - [Client.SearchUsers]: GET /search/users
//   - [Client.GetUser]: GET /users/{username}
//   - [Client.GetUserRepositories]: GET /users/{username}/repos, top 3 by stars
//   - [Client.GetUserReadme]: GET /repos/{username}/{username}/readme
//
// # Errors
//
// The first three return a [errors.Error] whose message is fixed and safe to
// show to users ([MsgSearchFailed], [MsgUserFetchFailed], [MsgRepoFetchFailed]);
// the transport error is kept as its cause. A 404 from /users/{username} is
// not distinguished from other failures.
//
// GetUserReadme never fails. Every failure, including the common case of a
// user with no profile repository, yields ok == false.
//
// # Usage
//
//	client := github.NewClient("")
//	res, err := client.SearchUsers(ctx, "octocat", 1, 10)
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err))
//	}
//
// [errors.Error]: github.com/matzehuels/ghfinder/pkg/errors.Error
package github
