package domain

import (
	"context"
	"time"
)

// Cache keys used by the client. Post detail entries derive their key
// from PostCacheKey.
const (
	CacheKeyPosts    = "posts"
	CacheKeyAuthUser = "authUser"
)

// PostCacheKey returns the cache key for a single post.
func PostCacheKey(id string) string {
	return "post:" + id
}

// FetchFunc loads a value for a cache key from the remote API.
type FetchFunc func(ctx context.Context) (any, error)

// ReadOptions tune a single cache read. The zero value means "fetch on
// miss, use the cache's default freshness window".
type ReadOptions struct {
	// FreshFor overrides the default freshness window when positive.
	FreshFor time.Duration
	// DisableFetch makes the read serve only an existing fresh entry;
	// on a miss it returns ErrFetchDisabled instead of fetching.
	DisableFetch bool
}

// QueryCache is a keyed, time-bounded cache of query results.
// Concurrent reads of the same key share one in-flight fetch, and an
// invalidated key refetches on its next read.
type QueryCache interface {
	Read(ctx context.Context, key string, fetch FetchFunc, opts ReadOptions) (any, error)
	Invalidate(key string)
}

// PostGateway wraps the five post operations of the remote API.
type PostGateway interface {
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, draft PostDraft) (*Post, error)
	UpdatePost(ctx context.Context, id string, patch PostPatch) (*Post, error)
	DeletePost(ctx context.Context, id string) error
}

// Registration is the payload of a new-account request.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// AuthGateway wraps the session endpoints of the remote API.
type AuthGateway interface {
	Me(ctx context.Context) (*User, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, reg Registration) error
}

// HintStore persists the logged_in flag. The flag is a claim of an
// active session, set by login and cleared only by explicit logout.
type HintStore interface {
	LoggedIn() bool
	SetLoggedIn(v bool) error
}

// Notifier surfaces user-visible feedback, one call per message.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user to approve an irrevocable action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Editor is the transient editing surface a mutation flow reconciles
// against: Reset clears the form fields, Close dismisses the panel.
type Editor interface {
	Reset()
	Close()
}
