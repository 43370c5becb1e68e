package swipe

import (
	"strings"
	"time"

	"swipehire/internal/domain/matching"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionLeft:
		return DirectionLeft, true
	case DirectionRight:
		return DirectionRight, true
	default:
		return "", false
	}
}

// Swipe is an append-only record of one directional decision. Repeat swipes
// on the same pair are stored as separate rows.
type Swipe struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	TargetID  uuid.UUID
	Direction Direction
	CreatedAt time.Time
}

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// Match is created only from a right swipe and carries the score computed at
// creation time. Status transitions happen outside the matching engine.
type Match struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Status      MatchStatus
	Score       matching.Score
	CreatedAt   time.Time
}
