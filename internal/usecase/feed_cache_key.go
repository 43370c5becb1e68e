package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

type feedCacheKeyInput struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Limit       int       `json:"limit"`
	Offset      int       `json:"offset"`
	MinScore    float64   `json:"min_score"`
}

func FeedCacheKey(candidateID uuid.UUID, params RecommendationParams) string {
	in := feedCacheKeyInput{
		CandidateID: candidateID,
		Limit:       params.Limit,
		Offset:      params.Offset,
		MinScore:    params.MinScore,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "feed:" + candidateID.String() + ":" + hex.EncodeToString(sum[:])
}

// FeedCachePattern matches every cached feed page for one candidate, for
// invalidation after a swipe changes the exclusion set.
func FeedCachePattern(candidateID uuid.UUID) string {
	return "feed:" + candidateID.String() + ":*"
}
