package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLocation(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		listing   string
		style     WorkStyle
		want      float64
	}{
		{"remote listing ignores location", "Bandung", "Jakarta", WorkStyleRemote, 100},
		{"exact", "Jakarta", "jakarta", WorkStyleOnsite, 100},
		{"exact with whitespace", "  Jakarta ", "Jakarta", WorkStyleHybrid, 100},
		{"partial city vs city-country", "Jakarta", "Jakarta, Indonesia", WorkStyleOnsite, 70},
		{"partial other direction", "Jakarta, Indonesia", "Jakarta", WorkStyleOnsite, 70},
		{"mismatch", "Surabaya", "Jakarta", WorkStyleOnsite, 30},
		{"missing candidate location", "", "Jakarta", WorkStyleOnsite, 50},
		{"missing listing location", "Jakarta", "", WorkStyleHybrid, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchLocation(tc.candidate, tc.listing, tc.style))
		})
	}
}
