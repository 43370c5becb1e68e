package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"swipehire/internal/database"
	"swipehire/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pingDB struct {
	database.DB
	err error
}

func (d pingDB) Ping(context.Context) error { return d.err }

func newHealthApp(db database.DB) *fiber.App {
	app := fiber.New()
	NewHealthHandler(db, nil).RegisterRoutes(app)
	return app
}

func TestHealth_Liveness(t *testing.T) {
	app := newHealthApp(pingDB{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestHealth_Readiness_DatabaseDown(t *testing.T) {
	app := newHealthApp(pingDB{err: errors.New("connection refused")})

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}

	var body response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != fiber.StatusServiceUnavailable {
		t.Fatalf("envelope status must mirror 503, got %d", body.Status)
	}
	if body.Message != "not ready" {
		t.Fatalf("expected not ready message, got %q", body.Message)
	}
}

func TestHealth_Readiness_OK(t *testing.T) {
	app := newHealthApp(pingDB{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
