package usecase

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"blogclient/internal/domain"
	"blogclient/utils/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() CreatePostInput {
	return CreatePostInput{
		Title:    "New post",
		Content:  "short body",
		Category: "tech",
		Image:    &domain.Attachment{Filename: "cover.png", Content: strings.NewReader("png")},
	}
}

func TestCreatePost_Success(t *testing.T) {
	gw := &mockPostGateway{post: &domain.Post{ID: "p9"}}
	cache := newMockCache()
	notifier := &mockNotifier{}
	editor := &mockEditor{}
	uc := NewCreatePost(gw, cache, notifier, editor, validator.New(), slog.Default())

	post, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "p9", post.ID)
	assert.Equal(t, "New post", gw.gotDraft.Title)

	assert.Equal(t, []string{domain.CacheKeyPosts}, cache.invalidated)
	assert.Equal(t, []string{"Post created successfully"}, notifier.successes)
	assert.Equal(t, 1, editor.resets, "form fields clear on successful create")
	assert.Equal(t, 1, editor.closes)
}

func TestCreatePost_EmptyTitleFailsLocally(t *testing.T) {
	gw := &mockPostGateway{}
	cache := newMockCache()
	notifier := &mockNotifier{}
	editor := &mockEditor{}
	uc := NewCreatePost(gw, cache, notifier, editor, validator.New(), slog.Default())

	input := validCreateInput()
	input.Title = ""
	_, err := uc.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Zero(t, gw.createCalls, "local validation failure must not reach the network")
	assert.Contains(t, notifier.errors, "title is required")
	assert.Empty(t, cache.invalidated)
	assert.Zero(t, editor.closes, "create form stays open for correction")
}

func TestCreatePost_MissingImageFailsLocally(t *testing.T) {
	gw := &mockPostGateway{}
	notifier := &mockNotifier{}
	uc := NewCreatePost(gw, newMockCache(), notifier, &mockEditor{}, validator.New(), slog.Default())

	input := validCreateInput()
	input.Image = nil
	_, err := uc.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Zero(t, gw.createCalls)
	assert.Contains(t, notifier.errors, "image is required")
}

func TestCreatePost_RemoteFailureKeepsFormOpen(t *testing.T) {
	gw := &mockPostGateway{err: &domain.RemoteError{
		StatusCode: 400,
		Messages:   []string{"title already taken", "category unknown"},
	}}
	cache := newMockCache()
	notifier := &mockNotifier{}
	editor := &mockEditor{}
	uc := NewCreatePost(gw, cache, notifier, editor, validator.New(), slog.Default())

	_, err := uc.Execute(context.Background(), validCreateInput())
	assert.Error(t, err)

	// One notification per server message, last-known-good list kept.
	assert.Equal(t, []string{"title already taken", "category unknown"}, notifier.errors)
	assert.Empty(t, cache.invalidated)
	assert.Zero(t, editor.closes)
	assert.Zero(t, editor.resets)
}

func TestCreatePost_TransportFailureIsGeneric(t *testing.T) {
	gw := &mockPostGateway{err: domain.ErrAPIUnavailable}
	notifier := &mockNotifier{}
	uc := NewCreatePost(gw, newMockCache(), notifier, &mockEditor{}, validator.New(), slog.Default())

	_, err := uc.Execute(context.Background(), validCreateInput())
	assert.Error(t, err)
	assert.Equal(t, []string{"Something went wrong, please try again"}, notifier.errors)
}
