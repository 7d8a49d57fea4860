package github

import (
	"regexp"
	"strings"

	"github.com/matzehuels/ghfinder/pkg/errors"
)

// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
var validUsername = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)

// ValidateUsername validates a GitHub login taken from user input, such as a
// CLI argument or a URL path parameter.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "username is required")
	}
	if !validUsername.MatchString(username) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid username %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", username)
	}
	return nil
}
