// Package config loads server configuration from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPassword is the shared password used when none is configured.
const DefaultPassword = "demo123"

// Config holds application configuration.
type Config struct {
	Port       int
	LogLevel   string
	DBPath     string // empty keeps products in memory for the process lifetime
	StaticPath string
	CORSOrigin string

	AuthPassword     string
	AuthPasswordHash string
	JWTSecret        string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	cfg := &Config{
		Port:             port,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBPath:           os.Getenv("DB_PATH"),
		StaticPath:       getEnv("STATIC_PATH", "./static"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
		AuthPassword:     os.Getenv("AUTH_PASSWORD"),
		AuthPasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if cfg.AuthPassword == "" && cfg.AuthPasswordHash == "" {
		slog.Warn("AUTH_PASSWORD not set, using the default shared password")
		cfg.AuthPassword = DefaultPassword
	}

	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		slog.Warn("JWT_SECRET not set, generated one; tokens won't survive a restart")
		cfg.JWTSecret = secret
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
