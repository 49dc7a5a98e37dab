package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-gateway/internal/metrics"
	"github.com/i474232898/weather-gateway/internal/weather"
)

// RapidAPIConfig bundles the HTTP client, credentials and breaker settings
// shared by the RapidAPI-hosted providers.
type RapidAPIConfig struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	APIHost string
	Breaker BreakerConfig
}

// BreakerConfig controls when a provider's circuit breaker opens.
type BreakerConfig struct {
	FailureThreshold int           // consecutive failures before opening (0 = never)
	OpenTimeout      time.Duration // open-state duration before a probe is allowed
}

var (
	errNoHTTPClient = errors.New("http client not configured")
	errServerError  = errors.New("server error")
)

// upstreamResult is what a single round trip yields inside the breaker.
type upstreamResult struct {
	status int
	body   []byte
}

func newCircuitBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cfg.FailureThreshold > 0 && counts.ConsecutiveFailures >= uint32(cfg.FailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("INFO: circuit breaker %s changed from %s to %s", name, from, to)
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

// doGet performs a single GET against cfg.BaseURL+path with the RapidAPI
// headers. Transport errors and 5xx responses count against the breaker;
// every non-2xx response is returned as a *weather.UpstreamError carrying
// the provider's body. The call is never retried.
func doGet(
	ctx context.Context,
	provider string,
	cfg RapidAPIConfig,
	cb *gobreaker.CircuitBreaker,
	path string,
	params url.Values,
) ([]byte, error) {
	if cfg.Client == nil {
		return nil, &weather.UpstreamError{Provider: provider, Err: errNoHTTPClient}
	}

	u := fmt.Sprintf("%s%s?%s", cfg.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &weather.UpstreamError{Provider: provider, Err: err}
	}
	req.Header.Set("X-RapidAPI-Key", cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", cfg.APIHost)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}

		res := upstreamResult{status: resp.StatusCode, body: body}
		if resp.StatusCode >= 500 {
			return res, errServerError
		}
		return res, nil
	})
	metrics.UpstreamLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	res, _ := result.(upstreamResult)
	if err != nil && res.status == 0 {
		metrics.UpstreamCallsTotal.WithLabelValues(provider, "error").Inc()
		return nil, &weather.UpstreamError{Provider: provider, Err: err}
	}

	metrics.UpstreamCallsTotal.WithLabelValues(provider, strconv.Itoa(res.status)).Inc()
	if res.status < 200 || res.status >= 300 {
		return nil, &weather.UpstreamError{Provider: provider, StatusCode: res.status, Body: res.body}
	}
	return res.body, nil
}
