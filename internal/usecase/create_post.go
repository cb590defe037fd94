package usecase

import (
	"context"
	"errors"
	"log/slog"

	"blogclient/internal/domain"
	"blogclient/utils/validator"
)

// CreatePostInput is the create form's field set. Every field is
// required, including the image attachment.
type CreatePostInput struct {
	Title    string             `json:"title" validate:"required"`
	Content  string             `json:"content" validate:"required,max=50"`
	Category string             `json:"category" validate:"required,max=50"`
	Image    *domain.Attachment `json:"image" validate:"required"`
}

// CreatePost is the create mutation flow: validate locally, submit the
// multipart payload, then reconcile the posts cache and the editing
// surface with the outcome.
type CreatePost struct {
	posts    domain.PostGateway
	cache    domain.QueryCache
	notifier domain.Notifier
	editor   domain.Editor
	validate *validator.Validator
	logger   *slog.Logger
}

func NewCreatePost(p domain.PostGateway, c domain.QueryCache, n domain.Notifier, e domain.Editor, v *validator.Validator, l *slog.Logger) *CreatePost {
	return &CreatePost{posts: p, cache: c, notifier: n, editor: e, validate: v, logger: l}
}

// Execute runs the flow. On any failure the form stays open so the
// user can correct and resubmit, and the cached feed keeps its
// last-known-good state.
func (uc *CreatePost) Execute(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	if err := uc.validate.Validate(input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				uc.notifier.Error(msg)
			}
		}
		return nil, err
	}

	post, err := uc.posts.CreatePost(ctx, domain.PostDraft{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Image:    input.Image,
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "create post rejected", "error", err)
		surfaceRemoteError(uc.notifier, err)
		return nil, err
	}

	// Invalidation strictly follows the observed success, so the next
	// feed read refetches instead of serving the pre-mutation list.
	uc.cache.Invalidate(domain.CacheKeyPosts)
	uc.notifier.Success("Post created successfully")
	uc.editor.Reset()
	uc.editor.Close()
	return post, nil
}
