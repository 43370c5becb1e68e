package dto

import (
	"time"

	"github.com/google/uuid"
)

type SwipeRequest struct {
	TargetID  string `json:"target_id" validate:"required,uuid"`
	Direction string `json:"direction" validate:"required,oneof=left right"`
}

type SwipeResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"created_at"`
}

type SwipeResultResponse struct {
	Swipe SwipeResponse  `json:"swipe"`
	Match *MatchResponse `json:"match,omitempty"`
}
