package ws

import (
	"encoding/json"
	"time"

	"swipehire/internal/domain/swipe"
)

type MatchCreatedEvent struct {
	Type        string  `json:"type"`
	MatchID     string  `json:"match_id"`
	CandidateID string  `json:"candidate_id"`
	JobID       string  `json:"job_id"`
	Overall     float64 `json:"overall"`
	Timestamp   string  `json:"timestamp"`
}

// MatchNotifier broadcasts committed matches to connected clients. It
// satisfies the swipe workflow's notifier contract and never blocks.
type MatchNotifier struct {
	hub *Hub
}

func NewMatchNotifier(hub *Hub) *MatchNotifier {
	return &MatchNotifier{hub: hub}
}

func (n *MatchNotifier) MatchCreated(m swipe.Match) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchCreatedEvent{
		Type:        "match_created",
		MatchID:     m.ID.String(),
		CandidateID: m.CandidateID.String(),
		JobID:       m.JobID.String(),
		Overall:     m.Score.Overall,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
