package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Session and authorization errors.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Remote API errors.
var (
	ErrAPIUnavailable = errors.New("blog API unavailable")
	ErrPostNotFound   = errors.New("post not found")
)

// Cache errors.
var (
	// ErrFetchDisabled is returned by a cache read whose options forbid
	// fetching when no fresh entry exists for the key.
	ErrFetchDisabled = errors.New("fetch disabled and no fresh entry")
)

// RemoteError is a decoded non-2xx response body. The API reports
// failures either as a single message or as a list of per-field
// messages; Messages holds whichever form arrived, one entry each.
type RemoteError struct {
	StatusCode int
	Status     string
	Messages   []string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("blog API returned status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}
