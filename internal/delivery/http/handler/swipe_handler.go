package handler

import (
	"swipehire/internal/delivery/http/dto"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/pkg/response"
	"swipehire/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwipeHandler struct {
	uc       usecase.SwipeUsecase
	validate *validator.Validate
}

func NewSwipeHandler(uc usecase.SwipeUsecase) *SwipeHandler {
	return &SwipeHandler{uc: uc, validate: validator.New()}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/swipes", h.Swipe)
}

func (h *SwipeHandler) Swipe(c fiber.Ctx) error {
	actorID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.SwipeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid target id", nil, err)
	}

	res, err := h.uc.Swipe(c.Context(), actorID, targetID, req.Direction)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.SwipeResultResponse{
		Swipe: dto.SwipeResponse{
			ID:        res.Swipe.ID,
			ActorID:   res.Swipe.ActorID,
			TargetID:  res.Swipe.TargetID,
			Direction: string(res.Swipe.Direction),
			CreatedAt: res.Swipe.CreatedAt,
		},
	}
	if res.Match != nil {
		m := toMatchResponse(*res.Match)
		out.Match = &m
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, out)
}
