package weather

// Fixed coordinates reported by the test forecast endpoint.
const (
	MockLat   = "37.81021N"
	MockLon   = "-122.42282W"
	MockPlace = "Test Location"
)

// MockDailyPayload returns a single-day upstream payload used to exercise
// ProjectDaily without network access. The summary keeps the provider's
// mis-encoded degree sign.
func MockDailyPayload() DailyPayload {
	var p DailyPayload
	p.Daily.Data = []DailyPayloadDay{
		{
			Day:            ptr("2024-12-14"),
			Weather:        ptr("psbl_rain"),
			Summary:        ptr("Possible rain changing to cloudy by evening. Temperature 52/57 Â°F. Wind from SW."),
			Predictability: ptr(4),
			Temperature:    ptr(53.8),
			TemperatureMin: ptr(51.5),
			TemperatureMax: ptr(56.9),
			Precipitation:  Precipitation{Total: ptr(1.05), Type: ptr("rain")},
			Probability:    Probability{Precipitation: ptr(47.0), Storm: ptr(0.0), Freeze: ptr(0.0)},
			Ozone:          ptr(314.63),
			Humidity:       ptr(84.0),
			Visibility:     ptr(10.36),
		},
	}
	return p
}

func ptr[T any](v T) *T {
	return &v
}
