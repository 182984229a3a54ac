package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string

	// HeyGen upstream. An empty API key is not an error: the read path then
	// serves stored data without attempting any refresh.
	HeyGenAPIKey  string
	HeyGenBaseURL string

	// Reconciliation budgets.
	ReconcilePerItemTimeout time.Duration
	ReconcileGlobalBudget   time.Duration

	// Optional redis used by the worker to keep concurrent replicas from
	// running the same refresh.
	RedisAddr     string
	RedisPassword string

	DBMaxConns int32
	DBMinConns int32

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		HeyGenAPIKey:  os.Getenv("HEYGEN_API_KEY"),
		HeyGenBaseURL: getEnv("HEYGEN_BASE_URL", "https://api.heygen.com"),

		ReconcilePerItemTimeout: time.Second * time.Duration(getEnvInt("RECONCILE_ITEM_TIMEOUT_SECONDS", 3)),
		ReconcileGlobalBudget:   time.Second * time.Duration(getEnvInt("RECONCILE_GLOBAL_BUDGET_SECONDS", 5)),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DBMaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns: int32(getEnvInt("DB_MIN_CONNS", 1)),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
