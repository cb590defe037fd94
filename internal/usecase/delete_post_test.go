package usecase

import (
	"context"
	"log/slog"
	"testing"

	"blogclient/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePost_DeclinedConfirmationIsANoOp(t *testing.T) {
	gw := &mockPostGateway{}
	cache := newMockCache()
	uc := NewDeletePost(gw, cache, &mockNotifier{}, &mockConfirmer{answer: false}, &mockEditor{}, slog.Default())

	err := uc.Execute(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, gw.deletedIDs, "declined confirmation must not reach the gateway")
	assert.Empty(t, cache.invalidated)
}

func TestDeletePost_ConfirmedSuccess(t *testing.T) {
	gw := &mockPostGateway{}
	cache := newMockCache()
	notifier := &mockNotifier{}
	editor := &mockEditor{}
	confirm := &mockConfirmer{answer: true}
	uc := NewDeletePost(gw, cache, notifier, confirm, editor, slog.Default())

	err := uc.Execute(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, gw.deletedIDs)
	assert.Equal(t, "Are you sure?", confirm.prompt)
	assert.ElementsMatch(t, []string{domain.CacheKeyPosts, domain.PostCacheKey("p1")}, cache.invalidated)
	assert.Equal(t, []string{"Post deleted successfully"}, notifier.successes)
	assert.Equal(t, 1, editor.closes)
}

func TestDeletePost_FailureKeepsCache(t *testing.T) {
	gw := &mockPostGateway{err: &domain.RemoteError{StatusCode: 500, Messages: []string{"storage offline"}}}
	cache := newMockCache()
	notifier := &mockNotifier{}
	editor := &mockEditor{}
	uc := NewDeletePost(gw, cache, notifier, &mockConfirmer{answer: true}, editor, slog.Default())

	err := uc.Execute(context.Background(), "p1")
	assert.Error(t, err)
	assert.Empty(t, cache.invalidated)
	assert.Equal(t, []string{"storage offline"}, notifier.errors)
	assert.Equal(t, 1, editor.closes)
}
