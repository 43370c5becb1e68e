package matching

type Candidate struct {
	Skills          []string
	YearsExperience int
	Values          []string
	WorkStyle       WorkStyle
	Location        string
}

type Listing struct {
	RequiredSkills     []string
	RequiredExperience int
	CompanyValues      []string
	WorkStyle          WorkStyle
	Location           string
}

type Score struct {
	Overall          float64  `json:"overall"`
	SkillMatch       float64  `json:"skill_match"`
	ExperienceMatch  float64  `json:"experience_match"`
	CulturalFit      float64  `json:"cultural_fit"`
	LocationFit      float64  `json:"location_fit"`
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	StrengthAreas    []string `json:"strength_areas"`
	ImprovementAreas []string `json:"improvement_areas"`
}

// Weights controls how the four component scores blend into the overall
// score. Weights are normalized by their sum before use.
type Weights struct {
	Skill      float64
	Experience float64
	Culture    float64
	Location   float64
}

// DefaultWeights is the canonical blend applied at every call site.
func DefaultWeights() Weights {
	return Weights{Skill: 0.35, Experience: 0.25, Culture: 0.25, Location: 0.15}
}

// SwipeWeights is the alternative blend with no location term, selectable
// via configuration.
func SwipeWeights() Weights {
	return Weights{Skill: 0.40, Experience: 0.30, Culture: 0.30, Location: 0}
}

func (w Weights) sum() float64 {
	return w.Skill + w.Experience + w.Culture + w.Location
}

func (w Weights) normalized() Weights {
	s := w.sum()
	if s <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Skill:      w.Skill / s,
		Experience: w.Experience / s,
		Culture:    w.Culture / s,
		Location:   w.Location / s,
	}
}

const (
	strengthThreshold    = 75.0
	improvementThreshold = 50.0
)

const (
	areaSkills     = "technical skills"
	areaExperience = "experience level"
	areaCulture    = "cultural fit"
	areaLocation   = "location and work style"
)

// Engine computes match scores between a candidate and a listing. It is
// stateless and safe for concurrent use.
type Engine struct {
	related RelatedSkills
	weights Weights
}

func NewEngine(related RelatedSkills, weights Weights) *Engine {
	if related == nil {
		related = DefaultRelatedSkills()
	}
	return &Engine{related: related, weights: weights.normalized()}
}

func (e *Engine) Weights() Weights {
	return e.weights
}

// Score is a pure function of its inputs: the same candidate and listing
// snapshots always produce the same result.
func (e *Engine) Score(c Candidate, l Listing) Score {
	skills := MatchSkills(c.Skills, l.RequiredSkills, e.related)
	experience := MatchExperience(c.YearsExperience, l.RequiredExperience)
	culture := MatchCulture(c.Values, l.CompanyValues, c.WorkStyle, l.WorkStyle)
	location := MatchLocation(c.Location, l.Location, l.WorkStyle)

	overall := e.weights.Skill*skills.Score +
		e.weights.Experience*experience +
		e.weights.Culture*culture +
		e.weights.Location*location

	s := Score{
		Overall:         clampScore(overall),
		SkillMatch:      skills.Score,
		ExperienceMatch: experience,
		CulturalFit:     culture,
		LocationFit:     location,
		MatchedSkills:   skills.MatchedSkills,
		MissingSkills:   skills.MissingSkills,
	}
	s.StrengthAreas, s.ImprovementAreas = classifyAreas(s)
	return s
}

func classifyAreas(s Score) (strengths, improvements []string) {
	strengths = make([]string, 0, 4)
	improvements = make([]string, 0, 4)

	components := []struct {
		area  string
		score float64
	}{
		{areaSkills, s.SkillMatch},
		{areaExperience, s.ExperienceMatch},
		{areaCulture, s.CulturalFit},
		{areaLocation, s.LocationFit},
	}
	for _, c := range components {
		switch {
		case c.score >= strengthThreshold:
			strengths = append(strengths, c.area)
		case c.score < improvementThreshold:
			improvements = append(improvements, c.area)
		}
	}
	return strengths, improvements
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
