package usecase

import (
	"context"
	"encoding/json"
	"time"

	"swipehire/internal/domain/job"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/profile"
	"swipehire/internal/domain/swipe"
	"swipehire/internal/repository"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	byID map[uuid.UUID]profile.CandidateProfile
	err  error
}

func (m *mockProfileRepo) FindByID(_ context.Context, id uuid.UUID) (profile.CandidateProfile, error) {
	if m.err != nil {
		return profile.CandidateProfile{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return profile.CandidateProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.CandidateProfile, error) {
	for _, p := range m.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.CandidateProfile{}, repository.ErrNotFound
}

type mockJobRepo struct {
	byID        map[uuid.UUID]job.Listing
	active      []job.Listing
	lastExclude []uuid.UUID
	err         error
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Listing, error) {
	if m.err != nil {
		return job.Listing{}, m.err
	}
	l, ok := m.byID[id]
	if !ok {
		return job.Listing{}, repository.ErrNotFound
	}
	return l, nil
}

func (m *mockJobRepo) ListActive(_ context.Context, limit int, exclude []uuid.UUID) ([]job.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastExclude = exclude
	skip := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	out := make([]job.Listing, 0, len(m.active))
	for _, l := range m.active {
		if _, ok := skip[l.ID]; ok {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type mockSwipeRepo struct {
	created        []swipe.Swipe
	matches        []swipe.Match
	seen           []uuid.UUID
	createErr      error
	withMatchErr   error
	withMatchCalls int
}

func (m *mockSwipeRepo) Create(_ context.Context, s swipe.Swipe) (swipe.Swipe, error) {
	if m.createErr != nil {
		return swipe.Swipe{}, m.createErr
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now().UTC()
	m.created = append(m.created, s)
	return s, nil
}

func (m *mockSwipeRepo) CreateWithMatch(_ context.Context, s swipe.Swipe, match swipe.Match) (swipe.Swipe, swipe.Match, error) {
	m.withMatchCalls++
	if m.withMatchErr != nil {
		return swipe.Swipe{}, swipe.Match{}, m.withMatchErr
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now().UTC()
	match.ID = uuid.New()
	match.CreatedAt = s.CreatedAt
	m.created = append(m.created, s)
	m.matches = append(m.matches, match)
	return s, match, nil
}

func (m *mockSwipeRepo) ListTargetIDsByActor(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return m.seen, nil
}

type mockNotifier struct {
	received []swipe.Match
}

func (m *mockNotifier) MatchCreated(match swipe.Match) {
	m.received = append(m.received, match)
}

type mockFeedCache struct {
	store       map[string][]byte
	sets        int
	invalidated []string
}

func newMockFeedCache() *mockFeedCache {
	return &mockFeedCache{store: map[string][]byte{}}
}

func (m *mockFeedCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockFeedCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.sets++
	m.store[key] = b
	return nil
}

func (m *mockFeedCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.invalidated = append(m.invalidated, pattern)
	return nil
}

type stubScoringBackend struct {
	score matching.Score
	err   error
	calls int
}

func (s *stubScoringBackend) Score(context.Context, matching.Candidate, matching.Listing) (matching.Score, error) {
	s.calls++
	if s.err != nil {
		return matching.Score{}, s.err
	}
	return s.score, nil
}
