package weather

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter is returned when a required query parameter is absent.
	ErrMissingParameter = errors.New("missing required parameter")
)

// UpstreamError reports a failed provider call. StatusCode and Body are set
// when the provider answered with a non-success status; otherwise Err holds
// the transport (or circuit breaker) error.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Details returns what should be relayed to the caller: the provider's body
// (as raw JSON when it is valid JSON) or, failing that, the error message.
func (e *UpstreamError) Details() any {
	if len(e.Body) > 0 {
		if json.Valid(e.Body) {
			return json.RawMessage(e.Body)
		}
		return string(e.Body)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}
