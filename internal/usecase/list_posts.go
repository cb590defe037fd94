package usecase

import (
	"context"
	"log/slog"
	"time"

	"blogclient/internal/domain"
)

// ListPosts reads the feed through the query cache.
type ListPosts struct {
	posts    domain.PostGateway
	cache    domain.QueryCache
	freshFor time.Duration
	logger   *slog.Logger
}

func NewListPosts(p domain.PostGateway, c domain.QueryCache, freshFor time.Duration, l *slog.Logger) *ListPosts {
	return &ListPosts{posts: p, cache: c, freshFor: freshFor, logger: l}
}

// Execute returns the cached feed, fetching when the entry is stale or
// was invalidated by a mutation. An empty feed is a valid result.
func (uc *ListPosts) Execute(ctx context.Context) ([]domain.Post, error) {
	v, err := uc.cache.Read(ctx, domain.CacheKeyPosts, func(ctx context.Context) (any, error) {
		return uc.posts.ListPosts(ctx)
	}, domain.ReadOptions{FreshFor: uc.freshFor})
	if err != nil {
		uc.logger.WarnContext(ctx, "feed read failed", "error", err)
		return nil, err
	}
	posts, _ := v.([]domain.Post)
	return posts, nil
}
