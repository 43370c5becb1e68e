package matching

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultMinScore is the quality cutoff applied to recommendation feeds,
// on the same 0-100 scale as Score.Overall.
const DefaultMinScore = 30.0

type RankedListing struct {
	ListingID uuid.UUID
	Score     Score
}

// Rank orders listings by descending overall score and drops entries below
// minScore. Ties keep their pool order.
func Rank(items []RankedListing, minScore float64) []RankedListing {
	out := make([]RankedListing, 0, len(items))
	for _, it := range items {
		if it.Score.Overall < minScore {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Overall > out[j].Score.Overall
	})
	return out
}
