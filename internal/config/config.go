package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the server and tools.
type Config struct {
	Port string

	// DBDriver selects the plan store: "sqlite" (default) or "postgres".
	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	// RedisAddr enables the place search cache when non-empty.
	RedisAddr      string
	PlacesCacheTTL time.Duration

	RecoBaseURL string
	RecoTimeout time.Duration

	CORSAllowedOrigins []string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := &Config{
		Port:               Get("PORT", "8080"),
		DBDriver:           Get("DB_DRIVER", "sqlite"),
		DBPath:             Get("DB_PATH", "data/app.db"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SeedPath:           os.Getenv("SEED_PATH"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		PlacesCacheTTL:     GetDuration("PLACES_CACHE_TTL", 6*time.Hour),
		RecoBaseURL:        Get("RECO_BASE_URL", "https://recotrip-backend-production.up.railway.app"),
		RecoTimeout:        GetDuration("RECO_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: GetList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("DB_PATH is required when DB_DRIVER=sqlite")
		}
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
	}
	return nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid duration for %s=%q, using %s", key, v, fallback)
	}
	return fallback
}

// GetList splits a comma-separated variable, dropping blank entries.
func GetList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	out := make([]string, 0, 4)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
