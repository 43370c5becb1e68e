package profile

import (
	"time"

	"swipehire/internal/domain/matching"

	"github.com/google/uuid"
)

type CandidateProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	DisplayName     string
	Skills          []string
	YearsExperience int
	Values          []string
	WorkStyle       matching.WorkStyle
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
