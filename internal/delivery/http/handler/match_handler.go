package handler

import (
	"swipehire/internal/delivery/http/dto"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/pkg/response"
	"swipehire/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matches repository.MatchRepository
}

func NewMatchHandler(matches repository.MatchRepository) *MatchHandler {
	return &MatchHandler{matches: matches}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matches", h.ListMatches)
}

func (h *MatchHandler) ListMatches(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	matches, err := h.matches.ListByCandidate(c.Context(), candidateID, limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchResponse(m))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
