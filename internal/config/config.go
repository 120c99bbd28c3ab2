package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `validate:"required"`
	HTTPPort    string `validate:"required,numeric"`
	LogLevel    string `validate:"required"`

	// Redis Config
	RedisAddr string `validate:"required"`
	RedisPass string
	RedisDB   int

	// Detail cache
	DetailCacheTTL time.Duration `validate:"min=0"`
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		DetailCacheTTL: getEnvAsDuration("DETAIL_CACHE_TTL", 5*time.Minute),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
