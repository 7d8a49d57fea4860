package integrations

import (
	"errors"
	"net/http"
	"time"
)

// httpTimeout bounds every request, including reading the response body.
const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the requested resource doesn't exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
