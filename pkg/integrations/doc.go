// Package integrations provides the shared HTTP layer for ghfinder's API clients.
//
// # Overview
//
// [Client] wraps an [net/http.Client] with a fixed 10 second timeout, default
// request headers, and status handling. Every request is a single round trip:
// there is no caching and no retry. Failures are reported as:
//
//   - [ErrNotFound]: the server answered 404
//   - [ErrNetwork]: transport failure, timeout, or any other non-2xx status
//
// API-specific clients live in subpackages and translate these sentinels into
// user-facing errors:
//
//   - [github]: GitHub REST API (user search, profiles, repositories, README)
//
// # Instrumentation
//
// Every request is reported to [observability.HTTP] so that the CLI can log
// requests, responses, and raw transport errors at debug level.
//
// [github]: github.com/matzehuels/ghfinder/pkg/integrations/github
package integrations
