package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"RAPID_API_KEY", "RAPID_API_HOST", "HISTORY_API_HOST", "FORECAST_API_URL",
		"HISTORY_API_URL", "HTTP_TIMEOUT", "BREAKER_FAILURE_THRESHOLD", "BREAKER_OPEN_TIMEOUT", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3002" {
		t.Errorf("expected default port 3002, got %q", cfg.Port)
	}
	if cfg.ForecastAPIHost != DefaultForecastHost {
		t.Errorf("unexpected forecast host %q", cfg.ForecastAPIHost)
	}
	if cfg.HistoryAPIHost != DefaultHistoryHost {
		t.Errorf("unexpected history host %q", cfg.HistoryAPIHost)
	}
	if cfg.ForecastAPIURL != "https://ai-weather-by-meteosource.p.rapidapi.com" {
		t.Errorf("unexpected forecast url %q", cfg.ForecastAPIURL)
	}
	if cfg.HistoryAPIURL != "https://weatherapi-com.p.rapidapi.com" {
		t.Errorf("unexpected history url %q", cfg.HistoryAPIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.BreakerFailureThreshold != 5 {
		t.Errorf("expected threshold 5, got %d", cfg.BreakerFailureThreshold)
	}
	if cfg.BreakerOpenTimeout != time.Minute {
		t.Errorf("expected 1m open timeout, got %v", cfg.BreakerOpenTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RAPID_API_KEY", "secret")
	t.Setenv("RAPID_API_HOST", "example.p.rapidapi.com")
	t.Setenv("PORT", "9000")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("BREAKER_FAILURE_THRESHOLD", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RapidAPIKey != "secret" {
		t.Errorf("expected key from env, got %q", cfg.RapidAPIKey)
	}
	if cfg.ForecastAPIHost != "example.p.rapidapi.com" {
		t.Errorf("expected host from env, got %q", cfg.ForecastAPIHost)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.BreakerFailureThreshold != 0 {
		t.Errorf("expected threshold 0, got %d", cfg.BreakerFailureThreshold)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"HTTP_TIMEOUT", "soon"},
		{"BREAKER_OPEN_TIMEOUT", "10"},
		{"BREAKER_FAILURE_THRESHOLD", "many"},
		{"BREAKER_FAILURE_THRESHOLD", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
