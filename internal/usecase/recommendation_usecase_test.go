package usecase

import (
	"context"
	"errors"
	"testing"

	"swipehire/internal/domain/job"
	"swipehire/internal/domain/matching"
	"swipehire/internal/domain/profile"

	"github.com/google/uuid"
)

func feedFixture() (*mockProfileRepo, *mockJobRepo, *mockSwipeRepo, uuid.UUID) {
	candidateID := uuid.New()
	profiles := &mockProfileRepo{byID: map[uuid.UUID]profile.CandidateProfile{
		candidateID: {
			ID:              candidateID,
			UserID:          candidateID,
			Skills:          []string{"Go", "PostgreSQL", "Docker"},
			YearsExperience: 4,
			Values:          []string{"ownership", "craftsmanship"},
			WorkStyle:       matching.WorkStyleRemote,
			Location:        "Remote",
		},
	}}

	// Strong, medium, and weak fits, deliberately out of score order.
	jobs := &mockJobRepo{active: []job.Listing{
		{
			ID: uuid.New(), Title: "Data Analyst", Company: "Weakfit",
			RequiredSkills:     []string{"excel", "tableau", "sas", "r"},
			RequiredExperience: 10,
			CompanyValues:      []string{"formality"},
			WorkStyle:          matching.WorkStyleOnsite,
			Location:           "Osaka",
			Active:             true,
		},
		{
			ID: uuid.New(), Title: "Backend Engineer", Company: "Strongfit",
			RequiredSkills:     []string{"Go", "PostgreSQL"},
			RequiredExperience: 3,
			CompanyValues:      []string{"ownership", "craftsmanship"},
			WorkStyle:          matching.WorkStyleRemote,
			Location:           "Remote",
			Active:             true,
		},
		{
			ID: uuid.New(), Title: "Platform Engineer", Company: "Midfit",
			RequiredSkills:     []string{"Go", "kubernetes"},
			RequiredExperience: 5,
			CompanyValues:      []string{"ownership"},
			WorkStyle:          matching.WorkStyleHybrid,
			Location:           "Jakarta",
			Active:             true,
		},
	}}

	return profiles, jobs, &mockSwipeRepo{}, candidateID
}

func newFeedForTest(profiles *mockProfileRepo, jobs *mockJobRepo, swipes *mockSwipeRepo, cache FeedCache) *Recommendation {
	engine := matching.NewEngine(matching.DefaultRelatedSkills(), matching.DefaultWeights())
	return NewRecommendationUsecase(profiles, jobs, swipes, engine, cache, 0, matching.DefaultMinScore, nil)
}

func TestRecommendations_SortedByScoreDesc(t *testing.T) {
	profiles, jobs, swipes, candidateID := feedFixture()
	uc := newFeedForTest(profiles, jobs, swipes, nil)

	items, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected non-empty feed")
	}
	for i := 1; i < len(items); i++ {
		if items[i].Score.Overall > items[i-1].Score.Overall {
			t.Fatalf("feed not sorted desc at %d: %v > %v", i, items[i].Score.Overall, items[i-1].Score.Overall)
		}
	}
	if items[0].Company != "Strongfit" {
		t.Fatalf("expected strongest fit first, got %s", items[0].Company)
	}
}

func TestRecommendations_CutoffExcludesWeakFits(t *testing.T) {
	profiles, jobs, swipes, candidateID := feedFixture()
	uc := newFeedForTest(profiles, jobs, swipes, nil)

	items, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, it := range items {
		if it.Score.Overall < matching.DefaultMinScore {
			t.Fatalf("listing %s below cutoff: %v", it.Company, it.Score.Overall)
		}
	}
}

func TestRecommendations_ExcludesAlreadySwiped(t *testing.T) {
	profiles, jobs, swipes, candidateID := feedFixture()
	seenID := jobs.active[1].ID
	swipes.seen = []uuid.UUID{seenID}
	uc := newFeedForTest(profiles, jobs, swipes, nil)

	items, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, it := range items {
		if it.JobID == seenID {
			t.Fatalf("already-swiped listing reappeared in feed")
		}
	}
	if len(jobs.lastExclude) != 1 || jobs.lastExclude[0] != seenID {
		t.Fatalf("expected exclusion pushed to the query, got %v", jobs.lastExclude)
	}
}

func TestRecommendations_Pagination(t *testing.T) {
	profiles, jobs, swipes, candidateID := feedFixture()
	uc := newFeedForTest(profiles, jobs, swipes, nil)

	all, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) < 2 {
		t.Skipf("need at least 2 qualifying listings, got %d", len(all))
	}

	page, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page))
	}
	if page[0].JobID != all[1].JobID {
		t.Fatalf("offset page mismatch: got %s want %s", page[0].JobID, all[1].JobID)
	}

	past, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20, Offset: 100})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(past) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(past))
	}
}

func TestRecommendations_ProfileNotFound(t *testing.T) {
	profiles, jobs, swipes, _ := feedFixture()
	uc := newFeedForTest(profiles, jobs, swipes, nil)

	_, err := uc.GetRecommendations(context.Background(), uuid.New(), RecommendationParams{Limit: 20})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRecommendations_CachesRenderedPage(t *testing.T) {
	profiles, jobs, swipes, candidateID := feedFixture()
	cache := newMockFeedCache()
	uc := newFeedForTest(profiles, jobs, swipes, cache)

	first, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Second call must be served from the cache, not the pool.
	jobs.active = nil
	second, err := uc.GetRecommendations(context.Background(), candidateID, RecommendationParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached page mismatch: got %d want %d", len(second), len(first))
	}
}
