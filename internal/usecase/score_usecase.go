package usecase

import (
	"context"
	"errors"
	"fmt"

	"swipehire/internal/domain/matching"
	"swipehire/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScoreUsecase interface {
	ComputeMatchScore(ctx context.Context, candidateID, jobID uuid.UUID) (matching.Score, error)
}

type Score struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	backend  ScoringBackend
	fallback ScoringBackend
	strict   bool
	logger   *zap.Logger
}

// NewScoreUsecase wires the selected scoring backend. fallback is consulted
// when the primary backend is unavailable and strict mode is off; pass nil
// to disable the fallback.
func NewScoreUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	backend ScoringBackend,
	fallback ScoringBackend,
	strict bool,
	logger *zap.Logger,
) *Score {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Score{
		profiles: profiles,
		jobs:     jobs,
		backend:  backend,
		fallback: fallback,
		strict:   strict,
		logger:   logger,
	}
}

func (u *Score) ComputeMatchScore(ctx context.Context, candidateID, jobID uuid.UUID) (matching.Score, error) {
	if candidateID == uuid.Nil {
		return matching.Score{}, fmt.Errorf("%w: empty candidate id", ErrInvalidInput)
	}
	if jobID == uuid.Nil {
		return matching.Score{}, fmt.Errorf("%w: empty job id", ErrInvalidInput)
	}

	p, err := u.profiles.FindByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return matching.Score{}, ErrProfileNotFound
		}
		return matching.Score{}, fmt.Errorf("%w: load profile: %v", ErrInternal, err)
	}

	l, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return matching.Score{}, ErrJobNotFound
		}
		return matching.Score{}, fmt.Errorf("%w: load listing: %v", ErrInternal, err)
	}

	return u.score(ctx, candidateInput(p), listingInput(l))
}

func (u *Score) score(ctx context.Context, c matching.Candidate, l matching.Listing) (matching.Score, error) {
	s, err := u.backend.Score(ctx, c, l)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrScoringUnavailable) {
		return matching.Score{}, err
	}
	if u.strict || u.fallback == nil {
		return matching.Score{}, err
	}

	u.logger.Warn("scoring backend unavailable, falling back to local engine", zap.Error(err))
	return u.fallback.Score(ctx, c, l)
}
