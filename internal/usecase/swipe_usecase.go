package usecase

import (
	"context"
	"errors"
	"fmt"

	"swipehire/internal/domain/job"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/profile"
	"swipehire/internal/domain/swipe"
	"swipehire/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchNotifier receives committed matches for out-of-band delivery. Calls
// must not block the swipe request.
type MatchNotifier interface {
	MatchCreated(m swipe.Match)
}

type SwipeResult struct {
	Swipe swipe.Swipe
	Match *swipe.Match
}

type SwipeUsecase interface {
	Swipe(ctx context.Context, actorID, targetID uuid.UUID, direction string) (SwipeResult, error)
}

type Swiping struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	swipes   repository.SwipeRepository
	scorer   ScoringBackend
	fallback ScoringBackend
	strict   bool
	cache    FeedCache
	notifier MatchNotifier
	logger   *zap.Logger
}

func NewSwipeUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	swipes repository.SwipeRepository,
	scorer ScoringBackend,
	fallback ScoringBackend,
	strict bool,
	cache FeedCache,
	notifier MatchNotifier,
	logger *zap.Logger,
) *Swiping {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Swiping{
		profiles: profiles,
		jobs:     jobs,
		swipes:   swipes,
		scorer:   scorer,
		fallback: fallback,
		strict:   strict,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Swipe records a directional decision. A right swipe computes the match
// score and commits the match, the applications counter bump, and the swipe
// record as one transaction. A left swipe records only the swipe. Repeat
// swipes on the same pair are accepted as history, not merged.
func (u *Swiping) Swipe(ctx context.Context, actorID, targetID uuid.UUID, direction string) (SwipeResult, error) {
	dir, ok := swipe.ParseDirection(direction)
	if !ok {
		return SwipeResult{}, fmt.Errorf("%w: direction must be left or right", ErrInvalidInput)
	}
	if actorID == uuid.Nil {
		return SwipeResult{}, ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return SwipeResult{}, fmt.Errorf("%w: empty target id", ErrInvalidInput)
	}

	p, err := u.profiles.FindByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SwipeResult{}, ErrProfileNotFound
		}
		return SwipeResult{}, fmt.Errorf("%w: load profile: %v", ErrInternal, err)
	}

	l, err := u.jobs.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SwipeResult{}, ErrJobNotFound
		}
		return SwipeResult{}, fmt.Errorf("%w: load listing: %v", ErrInternal, err)
	}

	rec := swipe.Swipe{ActorID: actorID, TargetID: targetID, Direction: dir}

	if dir == swipe.DirectionLeft {
		created, err := u.swipes.Create(ctx, rec)
		if err != nil {
			return SwipeResult{}, fmt.Errorf("%w: record swipe: %v", ErrInternal, err)
		}
		u.invalidateFeed(ctx, actorID)
		return SwipeResult{Swipe: created}, nil
	}

	score, err := u.scoreForSwipe(ctx, p, l)
	if err != nil {
		return SwipeResult{}, err
	}

	match := swipe.Match{
		CandidateID: actorID,
		JobID:       targetID,
		Status:      swipe.MatchStatusPending,
		Score:       score,
	}

	// The write is never retried here: a timeout can fire after the
	// transaction committed, and a second attempt would record a duplicate
	// match and bump the applications counter twice. The transient-vs-fatal
	// classification is surfaced so the caller can decide to resubmit.
	createdSwipe, createdMatch, err := u.swipes.CreateWithMatch(ctx, rec, match)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SwipeResult{}, ErrJobNotFound
		}
		if repository.IsRetryable(err) {
			u.logger.Warn("transient failure recording swipe", zap.Error(err))
			return SwipeResult{}, fmt.Errorf("%w: record swipe and match: transient storage failure: %v", ErrInternal, err)
		}
		return SwipeResult{}, fmt.Errorf("%w: record swipe and match: %v", ErrInternal, err)
	}

	u.invalidateFeed(ctx, actorID)
	if u.notifier != nil {
		u.notifier.MatchCreated(createdMatch)
	}
	return SwipeResult{Swipe: createdSwipe, Match: &createdMatch}, nil
}

func (u *Swiping) scoreForSwipe(ctx context.Context, p profile.CandidateProfile, l job.Listing) (matching.Score, error) {
	s, err := u.scorer.Score(ctx, candidateInput(p), listingInput(l))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrScoringUnavailable) || u.strict || u.fallback == nil {
		return s, err
	}
	u.logger.Warn("scoring backend unavailable during swipe, using local engine", zap.Error(err))
	return u.fallback.Score(ctx, candidateInput(p), listingInput(l))
}

func (u *Swiping) invalidateFeed(ctx context.Context, actorID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, FeedCachePattern(actorID)); err != nil {
		u.logger.Debug("feed cache invalidation failed", zap.Error(err))
	}
}
