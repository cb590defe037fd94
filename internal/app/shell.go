package app

import (
	"context"
	"sync"

	"blogclient/internal/domain"
	"blogclient/internal/session"
)

// Shell is the application frame: it tracks the current location,
// renders resolutions through a caller-supplied view, and re-resolves
// the mounted route whenever the session store changes.
type Shell struct {
	router *Router
	render func(Resolution)

	mu      sync.Mutex
	current string
}

// NewShell wires the shell to the session store. The returned cleanup
// detaches the store subscription.
func NewShell(router *Router, sessions *session.Store, render func(Resolution)) (*Shell, func()) {
	s := &Shell{router: router, render: render, current: PathHome}
	unsubscribe := sessions.Subscribe(func(*domain.User) {
		s.refresh()
	})
	return s, unsubscribe
}

// Navigate moves to path. The loading placeholder renders before the
// guard settles so no partially gated content flashes.
func (s *Shell) Navigate(ctx context.Context, path string) Resolution {
	s.render(Resolution{Outcome: OutcomeLoading, Path: path})

	res := s.router.Navigate(ctx, path)

	s.mu.Lock()
	s.current = res.Path
	s.mu.Unlock()

	s.render(res)
	return res
}

func (s *Shell) refresh() {
	s.mu.Lock()
	path := s.current
	s.mu.Unlock()

	res := s.router.Refresh(path)
	if res.Outcome == OutcomeRedirect {
		s.mu.Lock()
		s.current = res.Path
		s.mu.Unlock()
	}
	s.render(res)
}
