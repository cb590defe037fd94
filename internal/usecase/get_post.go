package usecase

import (
	"context"
	"log/slog"
	"time"

	"blogclient/internal/domain"
)

// GetPost reads a single post through the query cache.
type GetPost struct {
	posts    domain.PostGateway
	cache    domain.QueryCache
	freshFor time.Duration
	logger   *slog.Logger
}

func NewGetPost(p domain.PostGateway, c domain.QueryCache, freshFor time.Duration, l *slog.Logger) *GetPost {
	return &GetPost{posts: p, cache: c, freshFor: freshFor, logger: l}
}

func (uc *GetPost) Execute(ctx context.Context, id string) (*domain.Post, error) {
	v, err := uc.cache.Read(ctx, domain.PostCacheKey(id), func(ctx context.Context) (any, error) {
		return uc.posts.GetPost(ctx, id)
	}, domain.ReadOptions{FreshFor: uc.freshFor})
	if err != nil {
		uc.logger.WarnContext(ctx, "post read failed", "post_id", id, "error", err)
		return nil, err
	}
	return v.(*domain.Post), nil
}
