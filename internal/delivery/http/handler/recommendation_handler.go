package handler

import (
	"strconv"

	"swipehire/internal/delivery/http/dto"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/pkg/response"
	"swipehire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	params := usecase.RecommendationParams{
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
		MinScore: queryFloat(c, "min_score", 0),
	}

	items, err := h.uc.GetRecommendations(c.Context(), candidateID, params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RecommendationItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationItemResponse{
			JobID:     it.JobID,
			Title:     it.Title,
			Company:   it.Company,
			Location:  it.Location,
			WorkStyle: string(it.WorkStyle),
			Score:     toScoreResponse(it.Score),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(c fiber.Ctx, key string, def float64) float64 {
	v := c.Query(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
