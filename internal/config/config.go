package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultForecastHost = "ai-weather-by-meteosource.p.rapidapi.com"
	DefaultHistoryHost  = "weatherapi-com.p.rapidapi.com"
)

type AppConfig struct {
	// RapidAPIKey is sent to both upstreams. Never log it.
	RapidAPIKey string

	// Host identifiers sent as X-RapidAPI-Host.
	ForecastAPIHost string
	HistoryAPIHost  string

	// Base URLs of the upstream providers.
	ForecastAPIURL string
	HistoryAPIURL  string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Circuit breaker settings shared by both providers.
	BreakerFailureThreshold int           // consecutive failures before opening (0 = never)
	BreakerOpenTimeout      time.Duration // how long the breaker stays open

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.RapidAPIKey = os.Getenv("RAPID_API_KEY")
	cfg.ForecastAPIHost = getenvDefault("RAPID_API_HOST", DefaultForecastHost)
	cfg.HistoryAPIHost = getenvDefault("HISTORY_API_HOST", DefaultHistoryHost)
	cfg.ForecastAPIURL = getenvDefault("FORECAST_API_URL", "https://"+DefaultForecastHost)
	cfg.HistoryAPIURL = getenvDefault("HISTORY_API_URL", "https://"+DefaultHistoryHost)

	timeout, err := getenvDuration("HTTP_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	threshold, err := getenvInt("BREAKER_FAILURE_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	if threshold < 0 {
		return nil, fmt.Errorf("invalid BREAKER_FAILURE_THRESHOLD: must not be negative")
	}
	cfg.BreakerFailureThreshold = threshold

	openTimeout, err := getenvDuration("BREAKER_OPEN_TIMEOUT", "1m")
	if err != nil {
		return nil, err
	}
	cfg.BreakerOpenTimeout = openTimeout

	cfg.Port = getenvDefault("PORT", "3002")

	if cfg.RapidAPIKey == "" {
		log.Printf("INFO: RAPID_API_KEY is not set; upstream calls will be rejected by the provider")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
