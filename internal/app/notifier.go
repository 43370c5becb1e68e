package app

import (
	"context"
	"time"

	"swipehire/internal/domain/swipe"
	"swipehire/internal/infrastructure/scoring"
	"swipehire/internal/usecase"
	"swipehire/internal/ws"

	"go.uber.org/zap"
)

// matchNotifier fans a committed match out to the websocket hub and, when a
// remote scoring service is configured, reports it back as feedback. Both
// paths are best-effort; neither holds up the swipe response.
type matchNotifier struct {
	ws     *ws.MatchNotifier
	remote *scoring.Client
	logger *zap.Logger
}

var _ usecase.MatchNotifier = (*matchNotifier)(nil)

func newMatchNotifier(hub *ws.Hub, remote *scoring.Client, logger *zap.Logger) *matchNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &matchNotifier{remote: remote, logger: logger}
	if hub != nil {
		n.ws = ws.NewMatchNotifier(hub)
	}
	return n
}

func (n *matchNotifier) MatchCreated(m swipe.Match) {
	if n.ws != nil {
		n.ws.MatchCreated(m)
	}
	if n.remote != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := n.remote.SubmitFeedback(ctx, m); err != nil {
				n.logger.Warn("match feedback submit failed",
					zap.String("match_id", m.ID.String()),
					zap.Error(err),
				)
			}
		}()
	}
}
