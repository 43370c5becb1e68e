package routes

import (
	"swipehire/internal/delivery/http/handler"
	"swipehire/internal/delivery/http/middleware"
	v1 "swipehire/internal/delivery/http/routes/v1"
	"swipehire/internal/pkg/jwt"
	"swipehire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps   v1.Dependencies
	health *handler.HealthHandler
}

func NewRegistry(deps v1.Dependencies) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB, deps.Cache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.WSHub == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(r.deps.Config.JWT.AccessSecret, r.deps.Config.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	wsHandler := ws.NewHandler(r.deps.WSHub, r.deps.Logger)
	app.Get("/ws/matches", wsHandler.HandleMatchesWS, authMw.Middleware())
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
