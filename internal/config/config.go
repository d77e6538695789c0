// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the market backend.
type Config struct {
	ListenAddr     string
	YahooBaseURL   string
	GDELTBaseURL   string
	SerpAPIBaseURL string
	SerpAPIKey     string
	ClientTimeout  time.Duration
}

// FromEnv creates a configuration instance sourced from environment
// variables, loading a .env file first when one is present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		YahooBaseURL:   getEnv("YAHOO_CHART_BASE_URL", "https://query1.finance.yahoo.com"),
		GDELTBaseURL:   getEnv("GDELT_BASE_URL", "https://api.gdeltproject.org"),
		SerpAPIBaseURL: getEnv("SERPAPI_BASE_URL", "https://serpapi.com"),
		SerpAPIKey:     os.Getenv("SERPAPI_API_KEY"),
		ClientTimeout:  30 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
