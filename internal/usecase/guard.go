package usecase

import (
	"context"
	"log/slog"
	"slices"

	"blogclient/internal/domain"
	"blogclient/internal/session"
)

// GuardState is the outcome of evaluating a protected route.
type GuardState int

const (
	// StateResolving means the session fetch for this evaluation is
	// still in flight; the caller renders a loading placeholder.
	StateResolving GuardState = iota
	// StateAllowed renders the protected content.
	StateAllowed
	// StateUnauthorized redirects to the unauthorized view: there is a
	// proven user, but the role is not on the route's allow-list.
	StateUnauthorized
	// StateUnauthenticated redirects to the login entry point.
	StateUnauthenticated
)

func (s GuardState) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAllowed:
		return "allowed"
	case StateUnauthorized:
		return "unauthorized"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Decision is a settled guard evaluation. From carries the originally
// requested path so a redirect target can send the user back.
type Decision struct {
	State GuardState
	From  string
}

// Guard decides whether a navigation may enter a protected route. It
// consults the session store, re-entering the resolver when the store
// is empty, then applies the route's role allow-list.
type Guard struct {
	resolver *ResolveSession
	sessions *session.Store
	hints    domain.HintStore
	logger   *slog.Logger
}

func NewGuard(r *ResolveSession, s *session.Store, h domain.HintStore, l *slog.Logger) *Guard {
	return &Guard{resolver: r, sessions: s, hints: h, logger: l}
}

// Evaluate settles the guard for one navigation to path. Resolution
// failures are already logged by the resolver and settle as
// unauthenticated; they never escape as errors.
func (g *Guard) Evaluate(ctx context.Context, path string, allowedRoles []string) Decision {
	user := g.sessions.Get()
	if user == nil {
		resolved, err := g.resolver.Execute(ctx)
		if err == nil {
			user = resolved
		}
	}
	return g.decide(path, allowedRoles, user)
}

// Reevaluate re-runs the decision against the current session store
// without re-entering the resolver. Used when the store changes under
// a mounted route.
func (g *Guard) Reevaluate(path string, allowedRoles []string) Decision {
	return g.decide(path, allowedRoles, g.sessions.Get())
}

func (g *Guard) decide(path string, allowedRoles []string, user *domain.User) Decision {
	hint := g.hints.LoggedIn()

	// The hint is a claim, the user is proof. Both are required for a
	// verdict about roles; anything less falls through to login.
	switch {
	case hint && user != nil && slices.Contains(allowedRoles, user.Role):
		return Decision{State: StateAllowed, From: path}
	case hint && user != nil:
		g.logger.Info("role not allowed for route", "path", path, "role", user.Role)
		return Decision{State: StateUnauthorized, From: path}
	default:
		return Decision{State: StateUnauthenticated, From: path}
	}
}
