package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExperience(t *testing.T) {
	cases := []struct {
		name      string
		candidate int
		required  int
		want      float64
	}{
		{"no requirement", 0, 0, 100},
		{"exact", 3, 3, 100},
		{"slight surplus", 5, 3, 100},
		{"overqualified", 8, 3, 90},
		{"one year short", 2, 3, 80},
		{"three years short", 2, 5, 40},
		{"five years short floors at zero", 0, 5, 0},
		{"far short floors at zero", 1, 10, 0},
		{"negative candidate treated as zero", -2, 1, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchExperience(tc.candidate, tc.required))
		})
	}
}

func TestMatchExperience_MeetingThresholdStaysHigh(t *testing.T) {
	for cand := 0; cand <= 15; cand++ {
		for req := 0; req <= cand; req++ {
			assert.GreaterOrEqual(t, MatchExperience(cand, req), 90.0,
				"candidate=%d required=%d", cand, req)
		}
	}
}
