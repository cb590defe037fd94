package usecase

import (
	"context"
	"errors"
	"log/slog"

	"blogclient/internal/domain"
	"blogclient/utils/validator"
)

// UpdatePostInput is the edit form's field set. Empty fields mean
// "leave unchanged" and are dropped from the submitted patch.
type UpdatePostInput struct {
	Title    string             `json:"title"`
	Content  string             `json:"content" validate:"omitempty,max=50"`
	Category string             `json:"category" validate:"omitempty,max=50"`
	Image    *domain.Attachment `json:"-"`
}

// patch keeps only the fields that were actually filled in.
func (in UpdatePostInput) patch() domain.PostPatch {
	fields := make(map[string]string)
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Content != "" {
		fields["content"] = in.Content
	}
	if in.Category != "" {
		fields["category"] = in.Category
	}
	return domain.PostPatch{Fields: fields, Image: in.Image}
}

// UpdatePost is the update mutation flow. Unlike create, a rejected
// submission returns the panel to read view: an attempted edit is not
// retried in place. A local validation failure never reaches the
// server, so the form stays open for correction.
type UpdatePost struct {
	posts    domain.PostGateway
	cache    domain.QueryCache
	notifier domain.Notifier
	editor   domain.Editor
	validate *validator.Validator
	logger   *slog.Logger
}

func NewUpdatePost(p domain.PostGateway, c domain.QueryCache, n domain.Notifier, e domain.Editor, v *validator.Validator, l *slog.Logger) *UpdatePost {
	return &UpdatePost{posts: p, cache: c, notifier: n, editor: e, validate: v, logger: l}
}

func (uc *UpdatePost) Execute(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error) {
	if err := uc.validate.Validate(input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				uc.notifier.Error(msg)
			}
		}
		return nil, err
	}

	post, err := uc.posts.UpdatePost(ctx, id, input.patch())
	if err != nil {
		uc.logger.WarnContext(ctx, "update post rejected", "post_id", id, "error", err)
		surfaceRemoteError(uc.notifier, err)
		uc.editor.Close()
		return nil, err
	}

	uc.cache.Invalidate(domain.CacheKeyPosts)
	uc.cache.Invalidate(domain.PostCacheKey(id))
	uc.notifier.Success("Post updated successfully")
	uc.editor.Close()
	return post, nil
}
