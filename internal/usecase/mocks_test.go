package usecase

import (
	"context"

	"blogclient/internal/domain"
)

// mockCache implements domain.QueryCache with real read-through
// behavior so flows can be observed populating and invalidating keys.
type mockCache struct {
	entries      map[string]any
	invalidated  []string
	onInvalidate func(key string)
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]any)}
}

func (m *mockCache) Read(ctx context.Context, key string, fetch domain.FetchFunc, opts domain.ReadOptions) (any, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	if opts.DisableFetch {
		return nil, domain.ErrFetchDisabled
	}
	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	m.entries[key] = v
	return v, nil
}

func (m *mockCache) Invalidate(key string) {
	delete(m.entries, key)
	m.invalidated = append(m.invalidated, key)
	if m.onInvalidate != nil {
		m.onInvalidate(key)
	}
}

// mockPostGateway implements domain.PostGateway.
type mockPostGateway struct {
	posts []domain.Post
	post  *domain.Post
	err   error

	listCalls   int
	gotDraft    *domain.PostDraft
	gotPatch    *domain.PostPatch
	gotPatchID  string
	deletedIDs  []string
	createCalls int
}

func (m *mockPostGateway) ListPosts(context.Context) ([]domain.Post, error) {
	m.listCalls++
	return m.posts, m.err
}

func (m *mockPostGateway) GetPost(_ context.Context, id string) (*domain.Post, error) {
	return m.post, m.err
}

func (m *mockPostGateway) CreatePost(_ context.Context, draft domain.PostDraft) (*domain.Post, error) {
	m.createCalls++
	m.gotDraft = &draft
	return m.post, m.err
}

func (m *mockPostGateway) UpdatePost(_ context.Context, id string, patch domain.PostPatch) (*domain.Post, error) {
	m.gotPatchID = id
	m.gotPatch = &patch
	return m.post, m.err
}

func (m *mockPostGateway) DeletePost(_ context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}

// mockAuthGateway implements domain.AuthGateway.
type mockAuthGateway struct {
	user        *domain.User
	meErr       error
	loginErr    error
	logoutErr   error
	registerErr error

	meCalls     int
	gotEmail    string
	gotPassword string
	logoutCalls int
	gotReg      *domain.Registration
}

func (m *mockAuthGateway) Me(context.Context) (*domain.User, error) {
	m.meCalls++
	return m.user, m.meErr
}

func (m *mockAuthGateway) Login(_ context.Context, email, password string) error {
	m.gotEmail = email
	m.gotPassword = password
	return m.loginErr
}

func (m *mockAuthGateway) Logout(context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuthGateway) Register(_ context.Context, reg domain.Registration) error {
	m.gotReg = &reg
	return m.registerErr
}

// mockNotifier records surfaced feedback.
type mockNotifier struct {
	successes []string
	errors    []string
}

func (m *mockNotifier) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *mockNotifier) Error(msg string)   { m.errors = append(m.errors, msg) }

// mockConfirmer answers every confirmation the same way.
type mockConfirmer struct {
	answer bool
	prompt string
}

func (m *mockConfirmer) Confirm(prompt string) bool {
	m.prompt = prompt
	return m.answer
}

// mockEditor records reconciliation against the editing surface.
type mockEditor struct {
	resets int
	closes int
}

func (m *mockEditor) Reset() { m.resets++ }
func (m *mockEditor) Close() { m.closes++ }
