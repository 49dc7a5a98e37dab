package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-gateway/internal/weather"
)

// MeteosourceProvider implements weather.ForecastProvider for the
// AI Weather by Meteosource daily endpoint on RapidAPI.
type MeteosourceProvider struct {
	name    string
	cfg     RapidAPIConfig
	circuit *gobreaker.CircuitBreaker
}

func NewMeteosourceProvider(cfg RapidAPIConfig) *MeteosourceProvider {
	return &MeteosourceProvider{
		name:    "meteosource",
		cfg:     cfg,
		circuit: newCircuitBreaker("meteosource", cfg.Breaker),
	}
}

func (p *MeteosourceProvider) Name() string {
	return p.name
}

// FetchDaily requests the daily forecast in US units and English text.
func (p *MeteosourceProvider) FetchDaily(ctx context.Context, lat, lon string) (weather.DailyPayload, error) {
	values := url.Values{}
	values.Set("lat", lat)
	values.Set("lon", lon)
	values.Set("language", "en")
	values.Set("units", "us")

	body, err := doGet(ctx, p.name, p.cfg, p.circuit, "/daily", values)
	if err != nil {
		return weather.DailyPayload{}, err
	}

	var payload weather.DailyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.DailyPayload{}, &weather.UpstreamError{
			Provider: p.name,
			Err:      fmt.Errorf("decode daily forecast: %w", err),
		}
	}
	return payload, nil
}
