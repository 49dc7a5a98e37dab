package weather

import (
	"context"
	"fmt"
)

// Service calls the providers and shapes their payloads into responses.
// It checks required parameters itself so it can be used without the HTTP
// layer; both providers must be non-nil for the calls that use them.
type Service struct {
	forecast ForecastProvider
	history  HistoryProvider
}

// NewService creates a new Service.
func NewService(forecast ForecastProvider, history HistoryProvider) *Service {
	return &Service{
		forecast: forecast,
		history:  history,
	}
}

// GetForecast fetches the daily forecast for q and projects it.
func (s *Service) GetForecast(ctx context.Context, q ForecastQuery) (ForecastResponse, error) {
	if q.Lat == "" || q.Lon == "" {
		return ForecastResponse{}, fmt.Errorf("lat and lon: %w", ErrMissingParameter)
	}

	payload, err := s.forecast.FetchDaily(ctx, q.Lat, q.Lon)
	if err != nil {
		return ForecastResponse{}, fmt.Errorf("fetch daily forecast: %w", err)
	}

	return buildForecastResponse(q, payload), nil
}

// GetTestForecast projects the built-in mock payload. It never touches the network.
func (s *Service) GetTestForecast() ForecastResponse {
	place := MockPlace
	return ForecastResponse{
		Lat:      MockLat,
		Lon:      MockLon,
		Place:    &place,
		Forecast: ProjectDaily(MockDailyPayload()),
	}
}

// GetHistory fetches historical weather for q and projects it.
func (s *Service) GetHistory(ctx context.Context, q HistoryQuery) (HistoryResponse, error) {
	if q.Location == "" || q.StartDate == "" {
		return HistoryResponse{}, fmt.Errorf("q and dt: %w", ErrMissingParameter)
	}

	payload, err := s.history.FetchHistory(ctx, q)
	if err != nil {
		return HistoryResponse{}, fmt.Errorf("fetch history: %w", err)
	}

	return ProjectHistory(payload), nil
}

// buildForecastResponse suffixes the coordinates with "N" and "W" as given;
// the sign is not inspected.
func buildForecastResponse(q ForecastQuery, payload DailyPayload) ForecastResponse {
	var place *string
	if q.Place != "" {
		p := q.Place
		place = &p
	}
	return ForecastResponse{
		Lat:      q.Lat + "N",
		Lon:      q.Lon + "W",
		Place:    place,
		Forecast: ProjectDaily(payload),
	}
}
