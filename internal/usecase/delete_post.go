package usecase

import (
	"context"
	"log/slog"

	"blogclient/internal/domain"
)

// DeletePost is the delete mutation flow. Deletion is irrevocable, so
// submission is gated on an explicit confirmation.
type DeletePost struct {
	posts    domain.PostGateway
	cache    domain.QueryCache
	notifier domain.Notifier
	confirm  domain.Confirmer
	editor   domain.Editor
	logger   *slog.Logger
}

func NewDeletePost(p domain.PostGateway, c domain.QueryCache, n domain.Notifier, cf domain.Confirmer, e domain.Editor, l *slog.Logger) *DeletePost {
	return &DeletePost{posts: p, cache: c, notifier: n, confirm: cf, editor: e, logger: l}
}

// Execute deletes the post with the given id. A declined confirmation
// is a no-op, not an error.
func (uc *DeletePost) Execute(ctx context.Context, id string) error {
	if !uc.confirm.Confirm("Are you sure?") {
		return nil
	}

	if err := uc.posts.DeletePost(ctx, id); err != nil {
		uc.logger.WarnContext(ctx, "delete post rejected", "post_id", id, "error", err)
		surfaceRemoteError(uc.notifier, err)
		uc.editor.Close()
		return err
	}

	uc.cache.Invalidate(domain.CacheKeyPosts)
	uc.cache.Invalidate(domain.PostCacheKey(id))
	uc.notifier.Success("Post deleted successfully")
	uc.editor.Close()
	return nil
}
