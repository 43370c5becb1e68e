package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swipehire/internal/domain/matching"
	"swipehire/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// recommendationPoolSize bounds how many candidate listings are scored per
// feed request, after excluding already-swiped targets.
const recommendationPoolSize = 200

type RecommendationParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

type RecommendationItem struct {
	JobID     uuid.UUID          `json:"job_id"`
	Title     string             `json:"title"`
	Company   string             `json:"company"`
	Location  string             `json:"location"`
	WorkStyle matching.WorkStyle `json:"work_style"`
	Score     matching.Score     `json:"score"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	swipes   repository.SwipeRepository
	engine   *matching.Engine
	cache    FeedCache
	feedTTL  time.Duration
	minScore float64
	logger   *zap.Logger
}

func NewRecommendationUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	swipes repository.SwipeRepository,
	engine *matching.Engine,
	cache FeedCache,
	feedTTL time.Duration,
	minScore float64,
	logger *zap.Logger,
) *Recommendation {
	if engine == nil {
		engine = matching.NewEngine(nil, matching.DefaultWeights())
	}
	if minScore <= 0 {
		minScore = matching.DefaultMinScore
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{
		profiles: profiles,
		jobs:     jobs,
		swipes:   swipes,
		engine:   engine,
		cache:    cache,
		feedTTL:  feedTTL,
		minScore: minScore,
		logger:   logger,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > 50 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.MinScore <= 0 {
		params.MinScore = u.minScore
	}

	cacheKey := FeedCacheKey(candidateID, params)
	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	p, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("%w: load profile: %v", ErrInternal, err)
	}

	// The swipes table is the durable seen-set: already-swiped listings
	// never reappear in the feed, which is what makes "load more" stable.
	seen, err := u.swipes.ListTargetIDsByActor(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: load swipe history: %v", ErrInternal, err)
	}

	pool, err := u.jobs.ListActive(ctx, recommendationPoolSize, seen)
	if err != nil {
		return nil, fmt.Errorf("%w: load listings: %v", ErrInternal, err)
	}

	cand := candidateInput(p)
	ranked := make([]matching.RankedListing, 0, len(pool))
	byID := make(map[uuid.UUID]int, len(pool))
	for i, l := range pool {
		byID[l.ID] = i
		ranked = append(ranked, matching.RankedListing{
			ListingID: l.ID,
			Score:     u.engine.Score(cand, listingInput(l)),
		})
	}

	ranked = matching.Rank(ranked, params.MinScore)

	page := paginate(ranked, params.Offset, params.Limit)
	out := make([]RecommendationItem, 0, len(page))
	for _, r := range page {
		l := pool[byID[r.ListingID]]
		out = append(out, RecommendationItem{
			JobID:     l.ID,
			Title:     l.Title,
			Company:   l.Company,
			Location:  l.Location,
			WorkStyle: l.WorkStyle,
			Score:     r.Score,
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, u.feedTTL); err != nil {
			u.logger.Debug("feed cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func paginate(items []matching.RankedListing, offset, limit int) []matching.RankedListing {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
