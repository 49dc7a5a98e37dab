package weather

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeForecastProvider struct {
	calls   int
	payload DailyPayload
	err     error
}

func (f *fakeForecastProvider) Name() string { return "fake-forecast" }

func (f *fakeForecastProvider) FetchDaily(ctx context.Context, lat, lon string) (DailyPayload, error) {
	f.calls++
	return f.payload, f.err
}

type fakeHistoryProvider struct {
	calls int
	last  HistoryQuery
	err   error
}

func (f *fakeHistoryProvider) Name() string { return "fake-history" }

func (f *fakeHistoryProvider) FetchHistory(ctx context.Context, q HistoryQuery) (HistoryPayload, error) {
	f.calls++
	f.last = q
	return HistoryPayload{}, f.err
}

func TestGetForecastSuffixesCoordinates(t *testing.T) {
	fp := &fakeForecastProvider{payload: dailyPayload("2024-12-14", "2024-12-15")}
	svc := NewService(fp, nil)

	resp, err := svc.GetForecast(context.Background(), ForecastQuery{Lat: "37.81", Lon: "-122.42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Lat != "37.81N" {
		t.Errorf("expected 37.81N, got %s", resp.Lat)
	}
	if resp.Lon != "-122.42W" {
		t.Errorf("expected -122.42W, got %s", resp.Lon)
	}
	if resp.Place != nil {
		t.Errorf("expected nil place, got %q", *resp.Place)
	}
	if len(resp.Forecast) != 2 {
		t.Errorf("expected 2 days, got %d", len(resp.Forecast))
	}
}

func TestGetForecastPlace(t *testing.T) {
	svc := NewService(&fakeForecastProvider{}, nil)

	resp, err := svc.GetForecast(context.Background(), ForecastQuery{Lat: "1", Lon: "2", Place: "Dock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Place == nil || *resp.Place != "Dock" {
		t.Errorf("expected place Dock, got %v", resp.Place)
	}
}

func TestGetForecastMissingParameter(t *testing.T) {
	fp := &fakeForecastProvider{}
	svc := NewService(fp, nil)

	_, err := svc.GetForecast(context.Background(), ForecastQuery{Lat: "37.81"})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
	if fp.calls != 0 {
		t.Errorf("expected no provider call, got %d", fp.calls)
	}
}

func TestGetForecastUpstreamError(t *testing.T) {
	upstream := &UpstreamError{Provider: "fake-forecast", StatusCode: 503, Body: []byte(`{"message":"down"}`)}
	svc := NewService(&fakeForecastProvider{err: upstream}, nil)

	_, err := svc.GetForecast(context.Background(), ForecastQuery{Lat: "1", Lon: "2"})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", ue.StatusCode)
	}
}

func TestGetTestForecast(t *testing.T) {
	resp := NewService(nil, nil).GetTestForecast()

	if resp.Lat != MockLat || resp.Lon != MockLon {
		t.Errorf("unexpected coordinates %s %s", resp.Lat, resp.Lon)
	}
	if resp.Place == nil || *resp.Place != MockPlace {
		t.Errorf("unexpected place %v", resp.Place)
	}
	if len(resp.Forecast) != 1 || *resp.Forecast[0].Precipitation.Type != "rain" {
		t.Errorf("unexpected forecast %+v", resp.Forecast)
	}
}

func TestGetHistory(t *testing.T) {
	hp := &fakeHistoryProvider{}
	svc := NewService(nil, hp)

	q := HistoryQuery{Location: "London", StartDate: "2024-12-10"}
	resp, err := svc.GetHistory(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hp.last != q {
		t.Errorf("expected query %+v, got %+v", q, hp.last)
	}
	if resp.Forecast == nil {
		t.Error("expected non-nil forecast")
	}
}

func TestGetHistoryMissingParameter(t *testing.T) {
	tests := []HistoryQuery{
		{StartDate: "2024-12-10"},
		{Location: "London"},
		{EndDate: "2024-12-12"},
	}

	for _, q := range tests {
		hp := &fakeHistoryProvider{}
		_, err := NewService(nil, hp).GetHistory(context.Background(), q)
		if !errors.Is(err, ErrMissingParameter) {
			t.Errorf("%+v: expected ErrMissingParameter, got %v", q, err)
		}
		if hp.calls != 0 {
			t.Errorf("%+v: expected no provider call", q)
		}
	}
}

func TestUpstreamErrorDetails(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want string
	}{
		{"json body", &UpstreamError{StatusCode: 403, Body: []byte(`{"message":"forbidden"}`)}, `{"message":"forbidden"}`},
		{"text body", &UpstreamError{StatusCode: 502, Body: []byte("bad gateway")}, `"bad gateway"`},
		{"transport", &UpstreamError{Err: errors.New("connection refused")}, `"connection refused"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.err.Details())
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
		})
	}
}
