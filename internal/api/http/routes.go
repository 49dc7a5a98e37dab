package httpapi

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-gateway/internal/weather"
)

const (
	msgMissingCoordinates = "Latitude and longitude are required parameters"
	msgMissingHistory     = "Location (q) and start date (dt) are required parameters"
	msgForecastFailed     = "Failed to fetch weather data"
	msgHistoryFailed      = "Failed to fetch weather history data"
)

var validate = validator.New()

// RegisterRoutes wires the weather handlers into the Fiber app under /api/weather.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	api := app.Group("/api/weather")

	api.Get("/", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return &apiError{Status: fiber.StatusBadRequest, Message: msgMissingCoordinates, Err: err}
		}

		resp, err := service.GetForecast(c.UserContext(), req.toQuery())
		if err != nil {
			return upstreamFailure(err, msgForecastFailed, "Weather API Error")
		}

		return c.JSON(resp)
	})

	api.Get("/test", func(c *fiber.Ctx) error {
		return c.JSON(service.GetTestForecast())
	})

	api.Get("/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return &apiError{Status: fiber.StatusBadRequest, Message: msgMissingHistory, Err: err}
		}

		resp, err := service.GetHistory(c.UserContext(), req.toQuery())
		if err != nil {
			return upstreamFailure(err, msgHistoryFailed, "Weather History API Error")
		}

		return c.JSON(resp)
	})
}

// upstreamFailure logs what the provider said and turns it into a 500 that
// relays it under "details".
func upstreamFailure(err error, message, logPrefix string) error {
	var details any = err.Error()
	var ue *weather.UpstreamError
	if errors.As(err, &ue) {
		details = ue.Details()
	}

	log.Printf("ERROR: %s: %s", logPrefix, formatDetails(details))

	return &apiError{
		Status:  fiber.StatusInternalServerError,
		Message: message,
		Details: details,
		Err:     err,
	}
}

func formatDetails(details any) string {
	switch d := details.(type) {
	case json.RawMessage:
		return string(d)
	case string:
		return d
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return "unprintable details"
		}
		return string(b)
	}
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Lat   string `validate:"required"`
	Lon   string `validate:"required"`
	Place string
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.Lat = c.Query("lat")
	f.Lon = c.Query("lon")
	f.Place = c.Query("place")

	return validate.Struct(f)
}

func (f forecastQuery) toQuery() weather.ForecastQuery {
	return weather.ForecastQuery{
		Lat:   f.Lat,
		Lon:   f.Lon,
		Place: f.Place,
	}
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Q     string `validate:"required"`
	Dt    string `validate:"required"`
	EndDt string
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	h.Q = c.Query("q")
	h.Dt = c.Query("dt")
	h.EndDt = c.Query("end_dt")

	return validate.Struct(h)
}

func (h historyQuery) toQuery() weather.HistoryQuery {
	return weather.HistoryQuery{
		Location:  h.Q,
		StartDate: h.Dt,
		EndDate:   h.EndDt,
	}
}
