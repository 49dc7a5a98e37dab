package weather

// ProjectDaily reduces a daily-forecast payload to the public per-day shape.
// The mapping is one-to-one and order preserving; a payload without daily
// data yields an empty, non-nil slice.
func ProjectDaily(payload DailyPayload) []DailyForecastDay {
	days := make([]DailyForecastDay, 0, len(payload.Daily.Data))
	for _, d := range payload.Daily.Data {
		days = append(days, DailyForecastDay{
			Day:            d.Day,
			Weather:        d.Weather,
			Summary:        d.Summary,
			Predictability: d.Predictability,
			Temperature:    d.Temperature,
			TemperatureMin: d.TemperatureMin,
			TemperatureMax: d.TemperatureMax,
			Precipitation: Precipitation{
				Total: d.Precipitation.Total,
				Type:  d.Precipitation.Type,
			},
			Probability: Probability{
				Precipitation: d.Probability.Precipitation,
				Storm:         d.Probability.Storm,
				Freeze:        d.Probability.Freeze,
			},
			Ozone:      d.Ozone,
			Humidity:   d.Humidity,
			Visibility: d.Visibility,
		})
	}
	return days
}

// ProjectHistory reduces a history payload to its location and per-day
// aggregates, keeping the provider's day order.
func ProjectHistory(payload HistoryPayload) HistoryResponse {
	loc := payload.Location

	forecast := make([]HistoryForecastDay, 0, len(payload.Forecast.ForecastDay))
	for _, d := range payload.Forecast.ForecastDay {
		forecast = append(forecast, HistoryForecastDay{
			Date:      d.Date,
			DateEpoch: d.DateEpoch,
			Day:       d.Day,
		})
	}

	return HistoryResponse{
		Location: HistoryLocation{
			Name:    loc.Name,
			Region:  loc.Region,
			Country: loc.Country,
			Lat:     loc.Lat,
			Lon:     loc.Lon,
			TzID:    loc.TzID,
		},
		Forecast: forecast,
	}
}
