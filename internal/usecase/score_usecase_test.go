package usecase

import (
	"context"
	"errors"
	"testing"

	"swipehire/internal/domain/matching"

	"github.com/google/uuid"
)

func TestComputeMatchScore_EmptyIDs(t *testing.T) {
	profiles, jobs, _, actorID, targetID := newSwipeFixture()
	uc := NewScoreUsecase(profiles, jobs, NewLocalScoringBackend(nil), nil, false, nil)

	if _, err := uc.ComputeMatchScore(context.Background(), uuid.Nil, targetID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil candidate, got %v", err)
	}
	if _, err := uc.ComputeMatchScore(context.Background(), actorID, uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil job, got %v", err)
	}
}

func TestComputeMatchScore_NotFound(t *testing.T) {
	profiles, jobs, _, actorID, _ := newSwipeFixture()
	uc := NewScoreUsecase(profiles, jobs, NewLocalScoringBackend(nil), nil, false, nil)

	if _, err := uc.ComputeMatchScore(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := uc.ComputeMatchScore(context.Background(), actorID, uuid.New()); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestComputeMatchScore_LocalBackend(t *testing.T) {
	profiles, jobs, _, actorID, targetID := newSwipeFixture()
	uc := NewScoreUsecase(profiles, jobs, NewLocalScoringBackend(nil), nil, false, nil)

	s, err := uc.ComputeMatchScore(context.Background(), actorID, targetID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Overall <= 0 || s.Overall > 100 {
		t.Fatalf("overall out of range: %v", s.Overall)
	}
	if len(s.MatchedSkills) == 0 {
		t.Fatalf("expected matched skills for overlapping profile")
	}
}

func TestComputeMatchScore_RemoteFallback(t *testing.T) {
	profiles, jobs, _, actorID, targetID := newSwipeFixture()
	remote := &stubScoringBackend{err: ErrScoringUnavailable}
	uc := NewScoreUsecase(profiles, jobs, remote, NewLocalScoringBackend(nil), false, nil)

	s, err := uc.ComputeMatchScore(context.Background(), actorID, targetID)
	if err != nil {
		t.Fatalf("expected local fallback, got %v", err)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote attempt, got %d", remote.calls)
	}
	if s.Overall <= 0 {
		t.Fatalf("expected fallback score, got %v", s.Overall)
	}
}

func TestComputeMatchScore_StrictMode(t *testing.T) {
	profiles, jobs, _, actorID, targetID := newSwipeFixture()
	remote := &stubScoringBackend{err: ErrScoringUnavailable}
	uc := NewScoreUsecase(profiles, jobs, remote, NewLocalScoringBackend(nil), true, nil)

	_, err := uc.ComputeMatchScore(context.Background(), actorID, targetID)
	if !errors.Is(err, ErrScoringUnavailable) {
		t.Fatalf("expected ErrScoringUnavailable in strict mode, got %v", err)
	}
}

func TestComputeMatchScore_RemoteSuccessSkipsFallback(t *testing.T) {
	profiles, jobs, _, actorID, targetID := newSwipeFixture()
	remote := &stubScoringBackend{score: matching.Score{Overall: 87}}
	fallback := &stubScoringBackend{score: matching.Score{Overall: 1}}
	uc := NewScoreUsecase(profiles, jobs, remote, fallback, false, nil)

	s, err := uc.ComputeMatchScore(context.Background(), actorID, targetID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Overall != 87 {
		t.Fatalf("expected remote score, got %v", s.Overall)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback must not run on remote success")
	}
}
