package handler

import (
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/pkg/response"
	"swipehire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ScoreHandler struct {
	uc usecase.ScoreUsecase
}

func NewScoreHandler(uc usecase.ScoreUsecase) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/score", h.GetScore)
}

func (h *ScoreHandler) GetScore(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	score, err := h.uc.ComputeMatchScore(c.Context(), candidateID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toScoreResponse(score))
}
