package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swipehire/internal/config"
	"swipehire/internal/database/migration"
	"swipehire/internal/database/seeder"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/delivery/http/routes"
	v1 "swipehire/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := prepareDatabase(cfg, container, logger); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	go container.Hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(v1.Dependencies{
		Config:   cfg,
		DB:       container.DB,
		Cache:    container.Cache,
		Engine:   container.Engine,
		Remote:   container.Remote,
		Notifier: newMatchNotifier(container.Hub, container.Remote, logger),
		WSHub:    container.Hub,
		Logger:   logger,
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func prepareDatabase(cfg config.Config, container *Container, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Database.AutoMigrate {
		r := migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: logger}
		if err := r.Run(ctx, container.DB.SQLDB()); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	if cfg.Database.SeedDefaults {
		s := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
		if err := s.Run(ctx, container.DB); err != nil {
			return fmt.Errorf("run seeders: %w", err)
		}
	}

	return nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
