package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"swipehire/internal/config"
	"swipehire/internal/database"
	"swipehire/internal/database/migration"
	dbpostgres "swipehire/internal/database/postgres"
	"swipehire/internal/delivery/http/middleware"
	"swipehire/internal/delivery/http/routes"
	v1 "swipehire/internal/delivery/http/routes/v1"
	"swipehire/internal/domain/matching"
	"swipehire/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type recommendationItem struct {
	JobID   uuid.UUID `json:"job_id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
	Score   struct {
		Overall float64 `json:"overall"`
	} `json:"score"`
}

type swipeResult struct {
	Swipe struct {
		ID        uuid.UUID `json:"id"`
		Direction string    `json:"direction"`
	} `json:"swipe"`
	Match *struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
		Score  struct {
			Overall float64 `json:"overall"`
		} `json:"score"`
	} `json:"match"`
}

func TestIntegration_Recommendations_Swipe_Match(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	seed := seedDummyData(t, ctx, db)
	defer cleanupSeed(t, ctx, db, seed)

	app := newTestFiberApp(t, seed.cfg, db)
	tok := mintAccessToken(t, seed.cfg, seed.userID)

	// Feed contains the strong fit first and never the weak fit.
	recs := callRecommendations(t, app, tok)
	if len(recs) == 0 {
		t.Fatalf("recommendations: expected non-empty feed")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score.Overall > recs[i-1].Score.Overall {
			t.Fatalf("recommendations: not sorted desc at %d", i)
		}
	}
	if recs[0].JobID != seed.strongJobID {
		t.Fatalf("recommendations: expected strong fit first, got %s", recs[0].Title)
	}
	for _, it := range recs {
		if it.JobID == seed.weakJobID {
			t.Fatalf("recommendations: weak fit must be cut off")
		}
	}

	// Right swipe creates a pending match and bumps the counter atomically.
	before := applicationsCount(t, ctx, db, seed.strongJobID)
	res := callSwipe(t, app, tok, seed.strongJobID, "right")
	if res.Match == nil {
		t.Fatalf("swipe right: expected a match")
	}
	if res.Match.Status != "pending" {
		t.Fatalf("swipe right: expected pending match, got %s", res.Match.Status)
	}
	if res.Match.Score.Overall <= 0 {
		t.Fatalf("swipe right: expected positive score")
	}
	after := applicationsCount(t, ctx, db, seed.strongJobID)
	if after != before+1 {
		t.Fatalf("swipe right: applications_count %d -> %d, want +1", before, after)
	}

	// The swiped listing disappears from the feed.
	for _, it := range callRecommendations(t, app, tok) {
		if it.JobID == seed.strongJobID {
			t.Fatalf("recommendations: swiped listing reappeared")
		}
	}

	// Left swipe records history without a match or counter bump.
	res = callSwipe(t, app, tok, seed.midJobID, "left")
	if res.Match != nil {
		t.Fatalf("swipe left: unexpected match")
	}
	if applicationsCount(t, ctx, db, seed.midJobID) != 0 {
		t.Fatalf("swipe left: applications_count must stay 0")
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set SWIPEHIRE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	migDir := filepath.Join(filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..")), "migrations")
	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found: %s", migDir)
	}
	return migDir
}

type seededIDs struct {
	cfg         config.Config
	userID      uuid.UUID
	profileID   uuid.UUID
	strongJobID uuid.UUID
	midJobID    uuid.UUID
	weakJobID   uuid.UUID
}

func seedDummyData(t *testing.T, ctx context.Context, db database.DB) seededIDs {
	t.Helper()

	out := seededIDs{
		cfg: config.Config{
			App: config.AppConfig{AppName: "swipehire", Environment: "test", HTTPPort: "0"},
			JWT: config.JWTConfig{
				AccessSecret:    stringsOrDefault(os.Getenv("SWIPEHIRE_TEST_JWT_ACCESS_SECRET"), "test-access-secret"),
				AccessExpiresIn: 15 * time.Minute,
			},
			Matching: config.MatchingConfig{MinScore: matching.DefaultMinScore},
		},
		userID:      uuid.New(),
		profileID:   uuid.New(),
		strongJobID: uuid.New(),
		midJobID:    uuid.New(),
		weakJobID:   uuid.New(),
	}

	_, err := db.Exec(ctx,
		`INSERT INTO candidate_profiles (id, user_id, display_name, skills, years_experience, work_values, work_style, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		out.profileID, out.userID, "IT Candidate",
		[]string{"go", "postgresql", "docker"}, 4, []string{"ownership"}, "remote", "Remote",
	)
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	insertListing := func(id uuid.UUID, title string, skills []string, exp int, values []string, style, location string) {
		_, err := db.Exec(ctx,
			`INSERT INTO job_listings (id, employer_id, title, company, required_skills, required_experience, company_values, work_style, location, active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)`,
			id, uuid.New(), title, "IT Co", skills, exp, values, style, location,
		)
		if err != nil {
			t.Fatalf("seed listing %s: %v", title, err)
		}
	}

	insertListing(out.strongJobID, "Backend Engineer (IT)", []string{"go", "postgresql"}, 3, []string{"ownership"}, "remote", "Remote")
	insertListing(out.midJobID, "Platform Engineer (IT)", []string{"go", "kubernetes"}, 5, []string{"ownership"}, "hybrid", "Jakarta")
	insertListing(out.weakJobID, "Actuary (IT)", []string{"actuarial science", "sas"}, 12, []string{"formality"}, "onsite", "Osaka")

	return out
}

func cleanupSeed(t *testing.T, ctx context.Context, db database.DB, seed seededIDs) {
	t.Helper()

	_, _ = db.Exec(ctx, `DELETE FROM matches WHERE candidate_id = $1`, seed.userID)
	_, _ = db.Exec(ctx, `DELETE FROM swipes WHERE actor_id = $1`, seed.userID)
	_, _ = db.Exec(ctx, `DELETE FROM job_listings WHERE id IN ($1, $2, $3)`, seed.strongJobID, seed.midJobID, seed.weakJobID)
	_, _ = db.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, seed.profileID)
}

func newTestFiberApp(t *testing.T, cfg config.Config, db database.DB) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())

	routes.NewRegistry(v1.Dependencies{
		Config: cfg,
		DB:     db,
		Engine: matching.NewEngine(matching.DefaultRelatedSkills(), matching.DefaultWeights()),
		Logger: zap.NewNop(),
	}).Register(app)
	return app
}

func mintAccessToken(t *testing.T, cfg config.Config, userID uuid.UUID) string {
	t.Helper()

	svc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	tok, err := svc.GenerateAccessToken(userID, "candidate@example.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tok
}

func callRecommendations(t *testing.T, app *fiber.App, tok string) []recommendationItem {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/recommendations?limit=20", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("recommendations request: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("recommendations decode: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("recommendations: status %d message %q", sr.Status, sr.Message)
	}

	var items []recommendationItem
	if err := json.Unmarshal(sr.Data, &items); err != nil {
		t.Fatalf("recommendations data: %v", err)
	}
	return items
}

func callSwipe(t *testing.T, app *fiber.App, tok string, targetID uuid.UUID, direction string) swipeResult {
	t.Helper()

	b, _ := json.Marshal(map[string]string{"target_id": targetID.String(), "direction": direction})
	req := httptest.NewRequest("POST", "/api/v1/swipes", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("swipe request: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("swipe decode: %v", err)
	}
	if sr.Status != 201 {
		t.Fatalf("swipe: status %d message %q", sr.Status, sr.Message)
	}

	var out swipeResult
	if err := json.Unmarshal(sr.Data, &out); err != nil {
		t.Fatalf("swipe data: %v", err)
	}
	return out
}

func applicationsCount(t *testing.T, ctx context.Context, db database.DB, jobID uuid.UUID) int {
	t.Helper()

	var n int
	if err := db.QueryRow(ctx, `SELECT applications_count FROM job_listings WHERE id = $1`, jobID).Scan(&n); err != nil {
		t.Fatalf("applications_count: %v", err)
	}
	return n
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
