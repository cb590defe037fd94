package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"blogclient/internal/domain"
	"blogclient/internal/infrastructure/cache"
	"blogclient/internal/infrastructure/hint"
	"blogclient/internal/session"
	"blogclient/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// stubAuth implements domain.AuthGateway for router tests.
type stubAuth struct {
	user *domain.User
	err  error
}

func (s *stubAuth) Me(context.Context) (*domain.User, error) { return s.user, s.err }

func (s *stubAuth) Login(context.Context, string, string) error { return nil }

func (s *stubAuth) Logout(context.Context) error { return nil }

func (s *stubAuth) Register(context.Context, domain.Registration) error { return nil }

func testRoutes() []Route {
	return []Route{
		{Path: PathHome},
		{Path: PathLogin},
		{Path: PathRegister},
		{Path: PathUnauthorized},
		{Path: PathProfile, AllowedRoles: []string{domain.RoleUser, domain.RoleAdmin}},
	}
}

func newTestRouter(auth *stubAuth, hints domain.HintStore, store *session.Store) *Router {
	resolver := usecase.NewResolveSession(auth, cache.New(time.Minute), hints, store, time.Minute, slog.Default())
	guard := usecase.NewGuard(resolver, store, hints, slog.Default())
	return NewRouter(guard, slog.Default(), testRoutes()...)
}

func TestRouter_PublicRouteNeedsNoSession(t *testing.T) {
	r := newTestRouter(&stubAuth{err: domain.ErrUnauthenticated}, hint.NewMemoryStore(false), session.NewStore())

	res := r.Navigate(context.Background(), PathHome)
	assert.Equal(t, OutcomeRender, res.Outcome)
	assert.Equal(t, PathHome, res.Path)
}

func TestRouter_GuardedRouteAllowed(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "u1", Role: domain.RoleUser}}
	r := newTestRouter(auth, hint.NewMemoryStore(true), session.NewStore())

	res := r.Navigate(context.Background(), PathProfile)
	assert.Equal(t, OutcomeRender, res.Outcome)
	assert.Equal(t, PathProfile, res.Path)
}

func TestRouter_WrongRoleRedirectsToUnauthorized(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "u1", Role: domain.RoleUser}}
	store := session.NewStore()
	resolver := usecase.NewResolveSession(auth, cache.New(time.Minute), hint.NewMemoryStore(true), store, time.Minute, slog.Default())
	guard := usecase.NewGuard(resolver, store, hint.NewMemoryStore(true), slog.Default())
	r := NewRouter(guard, slog.Default(),
		Route{Path: "/admin", AllowedRoles: []string{domain.RoleAdmin}},
	)

	res := r.Navigate(context.Background(), "/admin")
	assert.Equal(t, OutcomeRedirect, res.Outcome)
	assert.Equal(t, PathUnauthorized, res.Path)
	assert.Equal(t, "/admin", res.From, "redirect must carry the original location")
}

func TestRouter_NoSessionRedirectsToLogin(t *testing.T) {
	r := newTestRouter(&stubAuth{err: domain.ErrUnauthenticated}, hint.NewMemoryStore(false), session.NewStore())

	res := r.Navigate(context.Background(), PathProfile)
	assert.Equal(t, OutcomeRedirect, res.Outcome)
	assert.Equal(t, PathLogin, res.Path)
	assert.Equal(t, PathProfile, res.From)
}

func TestRouter_UnknownPathFallsBackToFeed(t *testing.T) {
	r := newTestRouter(&stubAuth{}, hint.NewMemoryStore(false), session.NewStore())

	res := r.Navigate(context.Background(), "/no-such-page")
	assert.Equal(t, OutcomeRender, res.Outcome)
	assert.Equal(t, PathHome, res.Path)
}

func TestShell_RendersLoadingBeforeSettling(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "u1", Role: domain.RoleUser}}
	store := session.NewStore()
	r := newTestRouter(auth, hint.NewMemoryStore(true), store)

	var rendered []Resolution
	shell, cleanup := NewShell(r, store, func(res Resolution) {
		rendered = append(rendered, res)
	})
	defer cleanup()

	shell.Navigate(context.Background(), PathProfile)

	// Loading placeholder first, settled route second, plus one
	// re-render from the resolver populating the session store.
	assert.GreaterOrEqual(t, len(rendered), 2)
	assert.Equal(t, OutcomeLoading, rendered[0].Outcome)
	assert.Equal(t, OutcomeRender, rendered[len(rendered)-1].Outcome)
}

func TestShell_SessionClearRedirectsMountedRoute(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "u1", Role: domain.RoleUser}}
	store := session.NewStore()
	hints := hint.NewMemoryStore(true)
	r := newTestRouter(auth, hints, store)

	var last Resolution
	shell, cleanup := NewShell(r, store, func(res Resolution) { last = res })
	defer cleanup()

	shell.Navigate(context.Background(), PathProfile)
	assert.Equal(t, OutcomeRender, last.Outcome)

	// Logout clears the store; the mounted guarded route re-evaluates.
	hints.SetLoggedIn(false)
	store.Set(nil)
	assert.Equal(t, OutcomeRedirect, last.Outcome)
	assert.Equal(t, PathLogin, last.Path)
}
