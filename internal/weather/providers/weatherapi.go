package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-gateway/internal/weather"
)

// WeatherAPIProvider implements weather.HistoryProvider for the
// WeatherAPI.com history endpoint on RapidAPI.
type WeatherAPIProvider struct {
	name    string
	cfg     RapidAPIConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(cfg RapidAPIConfig) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		cfg:     cfg,
		circuit: newCircuitBreaker("weatherapi", cfg.Breaker),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// FetchHistory requests daily history from q.StartDate, up to q.EndDate when set.
func (p *WeatherAPIProvider) FetchHistory(ctx context.Context, q weather.HistoryQuery) (weather.HistoryPayload, error) {
	values := url.Values{}
	// WeatherAPI uses "q" for location; it accepts a city name, "lat,lon", a postcode or an IATA code.
	values.Set("q", q.Location)
	values.Set("dt", q.StartDate)
	if q.EndDate != "" {
		values.Set("end_dt", q.EndDate)
	}
	values.Set("lang", "en")

	body, err := doGet(ctx, p.name, p.cfg, p.circuit, "/history.json", values)
	if err != nil {
		return weather.HistoryPayload{}, err
	}

	var payload weather.HistoryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.HistoryPayload{}, &weather.UpstreamError{
			Provider: p.name,
			Err:      fmt.Errorf("decode history: %w", err),
		}
	}
	return payload, nil
}
