package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID          uuid.UUID          `json:"id"`
	CandidateID uuid.UUID          `json:"candidate_id"`
	JobID       uuid.UUID          `json:"job_id"`
	Status      string             `json:"status"`
	Score       MatchScoreResponse `json:"score"`
	CreatedAt   time.Time          `json:"created_at"`
}
