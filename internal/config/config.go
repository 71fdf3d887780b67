package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"tender-service/utils"
)

// Config holds all environment-driven settings.
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	PortalBaseURL string
	UploadDir     string
	// ReconcileEvery is the interval between nightly reconciliation sweeps.
	ReconcileEvery time.Duration
	// ReconcilePause is the throttle after each tender that was actually written.
	ReconcilePause time.Duration
}

// Load reads configuration from the environment. A .env file is honored
// when present; explicit env vars win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		utils.Warn("could not load .env file", map[string]any{"error": err.Error()})
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=tenders port=5432 sslmode=disable"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		PortalBaseURL:  getEnv("PORTAL_BASE_URL", "http://localhost:9090"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		ReconcileEvery: getDuration("RECONCILE_EVERY", 24*time.Hour),
		ReconcilePause: getDuration("RECONCILE_PAUSE", 100*time.Millisecond),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Warn("invalid duration in env, using default", map[string]any{"key": key, "value": v})
		return def
	}
	return d
}
