package dto

import "github.com/google/uuid"

type RecommendationItemResponse struct {
	JobID     uuid.UUID          `json:"job_id"`
	Title     string             `json:"title"`
	Company   string             `json:"company"`
	Location  string             `json:"location"`
	WorkStyle string             `json:"work_style"`
	Score     MatchScoreResponse `json:"score"`
}
