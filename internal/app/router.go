package app

import (
	"context"
	"log/slog"

	"blogclient/internal/usecase"
)

// Well-known paths of the application.
const (
	PathHome         = "/"
	PathProfile      = "/profile"
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathUnauthorized = "/unauthorized"
)

// Route is one entry of the route table. A nil allow-list marks a
// public route; guarded routes list the roles that may enter.
type Route struct {
	Path         string
	AllowedRoles []string
}

// Outcome of resolving a navigation.
type Outcome int

const (
	// OutcomeLoading means session resolution for the navigation is
	// still pending; the shell shows a placeholder, never partially
	// gated content.
	OutcomeLoading Outcome = iota
	// OutcomeRender shows the route's content.
	OutcomeRender
	// OutcomeRedirect sends the user to Path, with From preserved for
	// post-redirect recovery.
	OutcomeRedirect
)

// Resolution is the settled result of a navigation.
type Resolution struct {
	Outcome Outcome
	Path    string
	From    string
}

// Router resolves paths against the route table, putting guarded
// routes through the authorization guard.
type Router struct {
	routes map[string]Route
	guard  *usecase.Guard
	logger *slog.Logger
}

func NewRouter(guard *usecase.Guard, logger *slog.Logger, routes ...Route) *Router {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Path] = r
	}
	return &Router{routes: table, guard: guard, logger: logger}
}

// Navigate resolves one navigation to path, resolving the session if
// the guard needs it.
func (r *Router) Navigate(ctx context.Context, path string) Resolution {
	route, ok := r.routes[path]
	if !ok {
		// Unknown paths fall back to the feed, as the catch-all route.
		return Resolution{Outcome: OutcomeRender, Path: PathHome}
	}
	if route.AllowedRoles == nil {
		return Resolution{Outcome: OutcomeRender, Path: path}
	}
	return r.toResolution(r.guard.Evaluate(ctx, path, route.AllowedRoles))
}

// Refresh re-resolves path against the current session state without
// triggering a new session fetch. Used when the session store changes
// under a mounted route.
func (r *Router) Refresh(path string) Resolution {
	route, ok := r.routes[path]
	if !ok || route.AllowedRoles == nil {
		return Resolution{Outcome: OutcomeRender, Path: path}
	}
	return r.toResolution(r.guard.Reevaluate(path, route.AllowedRoles))
}

func (r *Router) toResolution(d usecase.Decision) Resolution {
	switch d.State {
	case usecase.StateAllowed:
		return Resolution{Outcome: OutcomeRender, Path: d.From}
	case usecase.StateUnauthorized:
		r.logger.Info("navigation rejected", "from", d.From, "state", d.State.String())
		return Resolution{Outcome: OutcomeRedirect, Path: PathUnauthorized, From: d.From}
	default:
		return Resolution{Outcome: OutcomeRedirect, Path: PathLogin, From: d.From}
	}
}
