package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when JWT_SECRET_KEY is not set.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	DBDriver     string
	DatabaseDSN  string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	TokenTTL     time.Duration
	StaticDir    string
	RateLimitRPS int
	ResetDB      bool
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present. The JWT secret has no
// default: a missing secret is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/todos?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:     getEnvDuration("TOKEN_TTL", 0),
		StaticDir:    getEnv("STATIC_DIR", "public"),
		RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 5),
		ResetDB:      os.Getenv("RESET_DB") == "true",
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
