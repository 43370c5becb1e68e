package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Scoring  ScoringConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	AutoMigrate   bool
	MigrationsDir string
	SeedDefaults  bool

	ConnectTimeout        time.Duration
	QueryTimeout          time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	FeedTTL  time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

// ScoringConfig selects the scoring backend. Backend is "local" or "remote";
// Strict disables the fallback to the local engine when the remote service
// is unavailable.
type ScoringConfig struct {
	Backend string
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Strict  bool
}

// MatchingConfig tunes the recommendation feed. MinScore is on the 0-100
// scale. WeightProfile is "default" or "swipe".
type MatchingConfig struct {
	MinScore      float64
	WeightProfile string
}

const (
	ScoringBackendLocal  = "local"
	ScoringBackendRemote = "remote"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogJSON:     optBool("LOG_JSON", strings.EqualFold(opt("APP_ENV"), "production")),
		LogDebug:    optBool("LOG_DEBUG", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		AutoMigrate:   optBool("DB_AUTO_MIGRATE", false),
		MigrationsDir: optDefault("DB_MIGRATIONS_DIR", "migrations"),
		SeedDefaults:  optBool("DB_SEED_DEFAULTS", false),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		QueryTimeout:          optDuration("DB_QUERY_TIMEOUT", 3*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		FeedTTL:  optDuration("REDIS_FEED_TTL", 5*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Scoring = ScoringConfig{
		Backend: strings.ToLower(optDefault("SCORING_BACKEND", ScoringBackendLocal)),
		BaseURL: opt("SCORING_BASE_URL"),
		APIKey:  opt("SCORING_API_KEY"),
		Timeout: optDuration("SCORING_TIMEOUT", 5*time.Second),
		Strict:  optBool("SCORING_STRICT", false),
	}

	cfg.Matching = MatchingConfig{
		MinScore:      optFloat("MATCHING_MIN_SCORE", 30),
		WeightProfile: strings.ToLower(optDefault("MATCHING_WEIGHT_PROFILE", "default")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Scoring.Backend != ScoringBackendLocal && cfg.Scoring.Backend != ScoringBackendRemote {
		return Config{}, fmt.Errorf("invalid SCORING_BACKEND: %q", cfg.Scoring.Backend)
	}
	if cfg.Scoring.Backend == ScoringBackendRemote && cfg.Scoring.BaseURL == "" {
		return Config{}, errors.New("SCORING_BASE_URL is required when SCORING_BACKEND=remote")
	}

	return cfg, nil
}

func optDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func optBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func optInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func optFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
