package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	DatabaseURL        string
	ServerPort         int
	EloKFactor         int
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables, optionally picking up
// a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	kFactor := 32
	if kStr := os.Getenv("ELO_K_FACTOR"); kStr != "" {
		kFactor, err = strconv.Atoi(kStr)
		if err != nil || kFactor <= 0 {
			return nil, fmt.Errorf("ELO_K_FACTOR must be a positive integer, got %q", kStr)
		}
	}

	origins := []string{"*"}
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		origins = strings.Split(originsStr, ",")
	}

	return &Config{
		DatabaseURL:        dbURL,
		ServerPort:         port,
		EloKFactor:         kFactor,
		CORSAllowedOrigins: origins,
	}, nil
}
