package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blogclient/internal/domain"
	"blogclient/internal/session"
)

// ResolveSession populates the session store from the remote whoami
// endpoint, gated by the persisted logged_in hint. It runs once on
// application boot and again on every guarded-route entry; the query
// cache keeps the re-entries cheap.
type ResolveSession struct {
	auth     domain.AuthGateway
	cache    domain.QueryCache
	hints    domain.HintStore
	sessions *session.Store
	freshFor time.Duration
	logger   *slog.Logger
}

func NewResolveSession(a domain.AuthGateway, c domain.QueryCache, h domain.HintStore, s *session.Store, freshFor time.Duration, l *slog.Logger) *ResolveSession {
	return &ResolveSession{auth: a, cache: c, hints: h, sessions: s, freshFor: freshFor, logger: l}
}

// Execute resolves the current user. When the hint claims no login,
// the whoami endpoint is never called and the store stays empty. A
// failed resolution also leaves the store empty but does not clear the
// hint; only an explicit logout does that.
func (uc *ResolveSession) Execute(ctx context.Context) (*domain.User, error) {
	opts := domain.ReadOptions{
		FreshFor:     uc.freshFor,
		DisableFetch: !uc.hints.LoggedIn(),
	}
	v, err := uc.cache.Read(ctx, domain.CacheKeyAuthUser, uc.fetchMe, opts)
	if err != nil {
		if errors.Is(err, domain.ErrFetchDisabled) {
			return nil, nil
		}
		uc.logger.WarnContext(ctx, "session resolution failed", "error", err)
		return nil, err
	}

	user := v.(*domain.User)
	uc.sessions.Set(user)
	return user, nil
}

func (uc *ResolveSession) fetchMe(ctx context.Context) (any, error) {
	user, err := uc.auth.Me(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}
