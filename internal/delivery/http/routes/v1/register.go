package v1

import (
	"swipehire/internal/config"
	"swipehire/internal/database"
	"swipehire/internal/delivery/http/handler"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/domain/matching"
	"swipehire/internal/infrastructure/cache"
	"swipehire/internal/infrastructure/scoring"
	"swipehire/internal/pkg/jwt"
	"swipehire/internal/repository"
	"swipehire/internal/usecase"
	"swipehire/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Dependencies carries the shared infrastructure the route tree wires
// handlers against. Remote is nil when the local scoring engine is the only
// backend; WSHub is nil when match streaming is disabled.
type Dependencies struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Engine   *matching.Engine
	Remote   *scoring.Client
	Notifier usecase.MatchNotifier
	WSHub    *ws.Hub
	Logger   *zap.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(deps.Config.JWT.AccessSecret, deps.Config.JWT.AccessExpiresIn)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	swipeRepo := repository.NewPostgresSwipeRepository(deps.DB)
	matchRepo := repository.NewPostgresMatchRepository(deps.DB)

	local := usecase.NewLocalScoringBackend(deps.Engine)

	var scorer usecase.ScoringBackend = local
	var fallback usecase.ScoringBackend
	if deps.Remote != nil {
		scorer = deps.Remote
		fallback = local
	}
	strict := deps.Config.Scoring.Strict

	var feedCache usecase.FeedCache
	if deps.Cache != nil {
		feedCache = deps.Cache
	}

	scoreUC := usecase.NewScoreUsecase(profileRepo, jobRepo, scorer, fallback, strict, deps.Logger)
	recommendationUC := usecase.NewRecommendationUsecase(
		profileRepo,
		jobRepo,
		swipeRepo,
		deps.Engine,
		feedCache,
		deps.Config.Redis.FeedTTL,
		deps.Config.Matching.MinScore,
		deps.Logger,
	)
	swipeUC := usecase.NewSwipeUsecase(
		profileRepo,
		jobRepo,
		swipeRepo,
		scorer,
		fallback,
		strict,
		feedCache,
		deps.Notifier,
		deps.Logger,
	)

	protected := r.Group("", authMw.Middleware())

	handler.NewScoreHandler(scoreUC).RegisterRoutes(protected)
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protected)
	handler.NewSwipeHandler(swipeUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchRepo).RegisterRoutes(protected)

	if deps.Remote != nil {
		handler.NewInsightsHandler(profileRepo, deps.Remote).RegisterRoutes(protected)
	}
}
