package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardValues(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want float64
	}{
		{"both empty", nil, nil, 100},
		{"identical", []string{"growth", "ownership"}, []string{"Growth", "Ownership"}, 100},
		{"half overlap", []string{"growth", "ownership"}, []string{"growth", "impact"}, 100.0 / 3},
		{"disjoint", []string{"growth"}, []string{"impact"}, 0},
		{"one side empty", []string{"growth"}, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, jaccardValues(tc.a, tc.b), 1e-9)
		})
	}
}

func TestWorkStyleScore(t *testing.T) {
	cases := []struct {
		a, b WorkStyle
		want float64
	}{
		{WorkStyleRemote, WorkStyleRemote, 100},
		{WorkStyleRemote, WorkStyleHybrid, 80},
		{WorkStyleRemote, WorkStyleOnsite, 60},
		{WorkStyleHybrid, WorkStyleHybrid, 100},
		{WorkStyleHybrid, WorkStyleOnsite, 80},
		{WorkStyleOnsite, WorkStyleOnsite, 100},
		{WorkStyle("nomad"), WorkStyleRemote, 50},
		{WorkStyleRemote, WorkStyle(""), 50},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, workStyleScore(tc.a, tc.b), "%s vs %s", tc.a, tc.b)
	}
}

func TestMatchCulture_Blend(t *testing.T) {
	// Full value overlap, remote vs onsite: 0.6*100 + 0.4*60.
	got := MatchCulture(
		[]string{"growth"}, []string{"growth"},
		WorkStyleRemote, WorkStyleOnsite,
	)
	assert.InDelta(t, 84.0, got, 1e-9)

	// No values on either side falls back to work-style compatibility only
	// on top of the neutral 100 value match.
	got = MatchCulture(nil, nil, WorkStyleHybrid, WorkStyleHybrid)
	assert.InDelta(t, 100.0, got, 1e-9)
}
