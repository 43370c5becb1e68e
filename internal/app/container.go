package app

import (
	"context"
	"time"

	"swipehire/internal/config"
	"swipehire/internal/database"
	dbpostgres "swipehire/internal/database/postgres"
	"swipehire/internal/domain/matching"
	"swipehire/internal/infrastructure/cache"
	"swipehire/internal/infrastructure/scoring"
	"swipehire/internal/repository"
	"swipehire/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Engine *matching.Engine
	Remote *scoring.Client
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Engine: buildEngine(ctx, cfg.Matching, db, logger),
		Hub:    ws.NewHub(logger),
	}

	if cfg.Scoring.Backend == config.ScoringBackendRemote {
		c.Remote = scoring.NewClient(cfg.Scoring, logger)
	}

	return c, nil
}

// buildEngine loads the related-skill table from the database and falls back
// to the built-in table when the load fails or comes back empty.
func buildEngine(ctx context.Context, cfg config.MatchingConfig, db database.DB, logger *zap.Logger) *matching.Engine {
	var related matching.RelatedSkills

	table, err := repository.NewPostgresRelatedSkillRepository(db).LoadAll(ctx)
	switch {
	case err != nil:
		logger.Warn("related skills load failed, using built-in table", zap.Error(err))
		related = matching.DefaultRelatedSkills()
	case len(table) == 0:
		related = matching.DefaultRelatedSkills()
	default:
		related = matching.NewStaticRelatedSkills(table)
	}

	weights := matching.DefaultWeights()
	if cfg.WeightProfile == "swipe" {
		weights = matching.SwipeWeights()
	}

	return matching.NewEngine(related, weights)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("cache close failed", zap.Error(err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
