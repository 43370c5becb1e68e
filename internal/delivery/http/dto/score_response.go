package dto

type MatchScoreResponse struct {
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
