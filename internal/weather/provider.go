package weather

import "context"

// ForecastQuery identifies a daily forecast request.
type ForecastQuery struct {
	Lat   string
	Lon   string
	Place string
}

// HistoryQuery identifies a historical weather request. EndDate is optional.
type HistoryQuery struct {
	Location  string
	StartDate string
	EndDate   string
}

// ForecastProvider abstracts the daily-forecast upstream.
type ForecastProvider interface {
	Name() string
	FetchDaily(ctx context.Context, lat, lon string) (DailyPayload, error)
}

// HistoryProvider abstracts the historical-weather upstream.
type HistoryProvider interface {
	Name() string
	FetchHistory(ctx context.Context, q HistoryQuery) (HistoryPayload, error)
}
