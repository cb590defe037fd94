package session

import (
	"sync"

	"blogclient/internal/domain"
)

// Store holds the currently known authenticated user, or nil when no
// session is resolved. It is a pure holder: resolution and clearing
// happen elsewhere, and every write goes through Set so subscribed
// guards observe consistent transitions.
type Store struct {
	mu   sync.RWMutex
	user *domain.User
	subs map[int]func(*domain.User)
	next int
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{subs: make(map[int]func(*domain.User))}
}

// Get returns the current user, or nil.
func (s *Store) Get() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set replaces the current user and notifies subscribers. Passing nil
// clears the session.
func (s *Store) Set(user *domain.User) {
	s.mu.Lock()
	s.user = user
	subs := make([]func(*domain.User), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// Subscribe registers fn to run on every Set. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(*domain.User)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
