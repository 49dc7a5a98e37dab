package weather

// Upstream payloads decode only the keys the projections read; everything
// else the providers send is ignored, whatever its shape.

// DailyPayload is the body of the daily-forecast provider's /daily endpoint.
type DailyPayload struct {
	Daily struct {
		Data []DailyPayloadDay `json:"data"`
	} `json:"daily"`
}

type DailyPayloadDay struct {
	Day            *string       `json:"day"`
	Weather        *string       `json:"weather"`
	Summary        *string       `json:"summary"`
	Predictability *int          `json:"predictability"`
	Temperature    *float64      `json:"temperature"`
	TemperatureMin *float64      `json:"temperature_min"`
	TemperatureMax *float64      `json:"temperature_max"`
	Precipitation  Precipitation `json:"precipitation"`
	Probability    Probability   `json:"probability"`
	Ozone          *float64      `json:"ozone"`
	Humidity       *float64      `json:"humidity"`
	Visibility     *float64      `json:"visibility"`
}

// HistoryPayload is the body of the history provider's history.json endpoint.
type HistoryPayload struct {
	Location HistoryLocation `json:"location"`
	Forecast struct {
		ForecastDay []HistoryPayloadDay `json:"forecastday"`
	} `json:"forecast"`
}

type HistoryPayloadDay struct {
	Date      *string    `json:"date"`
	DateEpoch *int64     `json:"date_epoch"`
	Day       HistoryDay `json:"day"`
}
