package handler

import (
	"context"
	"time"

	"swipehire/internal/database"
	"swipehire/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache pinger
}

func NewHealthHandler(db database.DB, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Liveness)
	r.Get("/health/ready", h.Readiness)
}

func (h *HealthHandler) Liveness(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "ok"})
}

// Readiness checks the backing stores. An unreachable cache is reported but
// does not fail the check since the service degrades gracefully without it.
func (h *HealthHandler) Readiness(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := fiber.Map{"database": "ok", "cache": "ok"}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, "not ready", checks)
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "unreachable"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
