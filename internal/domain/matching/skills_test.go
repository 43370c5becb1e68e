package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills_EmptyRequirements(t *testing.T) {
	res := MatchSkills([]string{"go"}, nil, DefaultRelatedSkills())
	assert.Equal(t, 100.0, res.Score)
	assert.Empty(t, res.MatchedSkills)
	assert.Empty(t, res.MissingSkills)
}

func TestMatchSkills_AllExact(t *testing.T) {
	res := MatchSkills(
		[]string{"Go", "PostgreSQL", "Docker"},
		[]string{"go", "postgresql"},
		DefaultRelatedSkills(),
	)
	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, []string{"go", "postgresql"}, res.MatchedSkills)
	assert.Empty(t, res.MissingSkills)
}

func TestMatchSkills_SimilarSubstring(t *testing.T) {
	// "react" vs "react.js" in either direction.
	res := MatchSkills([]string{"React.js"}, []string{"React"}, nil)
	assert.InDelta(t, 70.0, res.Score, 1e-9)
	assert.Equal(t, []string{"React"}, res.MatchedSkills)

	res = MatchSkills([]string{"React"}, []string{"React.js"}, nil)
	assert.InDelta(t, 70.0, res.Score, 1e-9)
}

func TestMatchSkills_RelatedTable(t *testing.T) {
	res := MatchSkills([]string{"javascript"}, []string{"react"}, DefaultRelatedSkills())
	assert.InDelta(t, 40.0, res.Score, 1e-9)
	assert.Equal(t, []string{"react"}, res.MatchedSkills)
}

func TestMatchSkills_BlankRequirementsIgnored(t *testing.T) {
	// Blank entries carry no weight and must not dilute the denominator.
	res := MatchSkills([]string{"go"}, []string{"go", " "}, nil)
	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, []string{"go"}, res.MatchedSkills)
	assert.Empty(t, res.MissingSkills)

	res = MatchSkills([]string{"go"}, []string{"", "  "}, nil)
	assert.Equal(t, 100.0, res.Score)
}

func TestMatchSkills_Absent(t *testing.T) {
	res := MatchSkills([]string{"cooking"}, []string{"rust"}, DefaultRelatedSkills())
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, []string{"rust"}, res.MissingSkills)
	assert.Empty(t, res.MatchedSkills)
}

func TestMatchSkills_MixedTiers(t *testing.T) {
	res := MatchSkills(
		[]string{"go", "react.js", "javascript"},
		[]string{"Go", "React", "Vue", "Rust"},
		DefaultRelatedSkills(),
	)
	// exact(1.0) + similar(0.7) + related(0.4) + absent(0) over 4 requirements.
	assert.InDelta(t, 52.5, res.Score, 1e-9)
	assert.Equal(t, []string{"Go", "React", "Vue"}, res.MatchedSkills)
	assert.Equal(t, []string{"Rust"}, res.MissingSkills)
}

func TestMatchSkills_BoundedAndOrdered(t *testing.T) {
	cases := [][2][]string{
		{{}, {}},
		{{"a"}, {"a", "b", "c"}},
		{{"a", "b"}, {"x"}},
		{{"go"}, {"go", "go", "go"}},
	}
	for _, c := range cases {
		res := MatchSkills(c[0], c[1], DefaultRelatedSkills())
		assert.GreaterOrEqual(t, res.Score, 0.0)
		assert.LessOrEqual(t, res.Score, 100.0)
		assert.Len(t, res.MatchedSkills, len(c[1])-len(res.MissingSkills))
	}
}
