package utils

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// NewRESTClient returns a resty client for the JSON API at baseURL. Every
// response is logged at debug level with its method, path and latency.
func NewRESTClient(baseURL string, timeout time.Duration, log *logger.Logger) *resty.Client {
	if log == nil {
		log = logger.Nop()
	}

	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "fhevm-cli").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Bool("authorized", resp.Request.Token != "").
				Msg("server responded")
			return nil
		})
}
