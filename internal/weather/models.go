package weather

// Scalar fields are pointers so that a null or missing upstream value is
// relayed as null instead of a fabricated zero.

// DailyForecastDay is the reduced per-day shape returned by the forecast endpoints.
type DailyForecastDay struct {
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

type Precipitation struct {
	Total *float64 `json:"total"`
	Type  *string  `json:"type"`
}

// Probability values are percentages.
type Probability struct {
	Precipitation *float64 `json:"precipitation"`
	Storm         *float64 `json:"storm"`
	Freeze        *float64 `json:"freeze"`
}

// ForecastResponse is the envelope of GET /api/weather.
// Lat and Lon carry the literal "N"/"W" suffixes; Place is null when absent.
type ForecastResponse struct {
	Lat      string             `json:"lat"`
	Lon      string             `json:"lon"`
	Place    *string            `json:"place"`
	Forecast []DailyForecastDay `json:"forecast"`
}

type HistoryLocation struct {
	Name    *string  `json:"name"`
	Region  *string  `json:"region"`
	Country *string  `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	TzID    *string  `json:"tz_id"`
}

type HistoryForecastDay struct {
	Date      *string    `json:"date"`
	DateEpoch *int64     `json:"date_epoch"`
	Day       HistoryDay `json:"day"`
}

// HistoryDay holds the daily aggregates kept from the history provider.
type HistoryDay struct {
	MaxTempC          *float64 `json:"maxtemp_c"`
	MaxTempF          *float64 `json:"maxtemp_f"`
	MinTempC          *float64 `json:"mintemp_c"`
	MinTempF          *float64 `json:"mintemp_f"`
	AvgTempC          *float64 `json:"avgtemp_c"`
	AvgTempF          *float64 `json:"avgtemp_f"`
	MaxWindMph        *float64 `json:"maxwind_mph"`
	MaxWindKph        *float64 `json:"maxwind_kph"`
	TotalPrecipMm     *float64 `json:"totalprecip_mm"`
	TotalPrecipIn     *float64 `json:"totalprecip_in"`
	TotalSnowCm       *float64 `json:"totalsnow_cm"`
	AvgVisKm          *float64 `json:"avgvis_km"`
	AvgVisMiles       *float64 `json:"avgvis_miles"`
	AvgHumidity       *float64 `json:"avghumidity"`
	DailyWillItRain   *int     `json:"daily_will_it_rain"`
	DailyChanceOfRain *int     `json:"daily_chance_of_rain"`
	DailyWillItSnow   *int     `json:"daily_will_it_snow"`
	DailyChanceOfSnow *int     `json:"daily_chance_of_snow"`
}

// HistoryResponse is returned as-is by GET /api/weather/history.
type HistoryResponse struct {
	Location HistoryLocation      `json:"location"`
	Forecast []HistoryForecastDay `json:"forecast"`
}
