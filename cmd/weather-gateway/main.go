package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/weather-gateway/internal/api/http"
	"github.com/i474232898/weather-gateway/internal/config"
	"github.com/i474232898/weather-gateway/internal/weather"
	"github.com/i474232898/weather-gateway/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	breaker := providers.BreakerConfig{
		FailureThreshold: cfg.BreakerFailureThreshold,
		OpenTimeout:      cfg.BreakerOpenTimeout,
	}

	forecast := providers.NewMeteosourceProvider(providers.RapidAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.ForecastAPIURL,
		APIKey:  cfg.RapidAPIKey,
		APIHost: cfg.ForecastAPIHost,
		Breaker: breaker,
	})
	history := providers.NewWeatherAPIProvider(providers.RapidAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.HistoryAPIURL,
		APIKey:  cfg.RapidAPIKey,
		APIHost: cfg.HistoryAPIHost,
		Breaker: breaker,
	})

	service := weather.NewService(forecast, history)
	app := httpapi.NewApp(service)

	// Start server with graceful shutdown
	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
