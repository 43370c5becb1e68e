package usecase

import (
	"context"
	"time"
)

// FeedCache is the slice of the cache the recommendation feed needs. The
// Redis adapter satisfies it; a nil cache disables caching entirely.
type FeedCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
