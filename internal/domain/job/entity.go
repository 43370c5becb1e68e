package job

import (
	"time"

	"swipehire/internal/domain/matching"

	"github.com/google/uuid"
)

type Listing struct {
	ID                 uuid.UUID
	EmployerID         uuid.UUID
	Title              string
	Company            string
	RequiredSkills     []string
	RequiredExperience int
	CompanyValues      []string
	WorkStyle          matching.WorkStyle
	Location           string
	ApplicationsCount  int
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
