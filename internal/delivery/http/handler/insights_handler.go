package handler

import (
	"context"
	"errors"

	"swipehire/internal/delivery/http/dto"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/domain/matching"
	"swipehire/internal/pkg/response"
	"swipehire/internal/repository"
	"swipehire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// InsightsProvider is the slice of the remote scoring client this handler
// needs. The route is only registered when a remote backend is configured.
type InsightsProvider interface {
	Analyze(ctx context.Context, c matching.Candidate) ([]string, error)
}

type InsightsHandler struct {
	profiles repository.ProfileRepository
	provider InsightsProvider
}

func NewInsightsHandler(profiles repository.ProfileRepository, provider InsightsProvider) *InsightsHandler {
	return &InsightsHandler{profiles: profiles, provider: provider}
}

func (h *InsightsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil || h.provider == nil {
		return
	}
	r.Get("/profile/insights", h.GetInsights)
}

func (h *InsightsHandler) GetInsights(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.profiles.FindByUserID(c.Context(), candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return mapUsecaseError(usecase.ErrProfileNotFound)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	suggestions, err := h.provider.Analyze(c.Context(), matching.Candidate{
		Skills:          p.Skills,
		YearsExperience: p.YearsExperience,
		Values:          p.Values,
		WorkStyle:       p.WorkStyle,
		Location:        p.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileInsightsResponse{Suggestions: suggestions})
}
