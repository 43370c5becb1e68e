package usecase

import (
	"context"

	"swipehire/internal/domain/matching"
)

// ScoringBackend computes a match score for a candidate/listing pair. The
// local implementation wraps the in-process engine; the remote one delegates
// to an external scoring service and reports ErrScoringUnavailable on any
// transport or non-success failure.
type ScoringBackend interface {
	Score(ctx context.Context, c matching.Candidate, l matching.Listing) (matching.Score, error)
}

type LocalScoringBackend struct {
	engine *matching.Engine
}

func NewLocalScoringBackend(engine *matching.Engine) *LocalScoringBackend {
	if engine == nil {
		engine = matching.NewEngine(nil, matching.DefaultWeights())
	}
	return &LocalScoringBackend{engine: engine}
}

func (b *LocalScoringBackend) Score(_ context.Context, c matching.Candidate, l matching.Listing) (matching.Score, error) {
	return b.engine.Score(c, l), nil
}
