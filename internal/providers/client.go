package providers

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	requestTimeout = 10 * time.Second
	userAgent      = "weather-report/1.0"
)

// newHTTPClient returns a resty client with a fixed timeout and no retries.
func newHTTPClient(name, baseURL string) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(requestTimeout).
		SetRetryCount(0)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		log.Debug().Str("provider", name).Str("method", req.Method).Str("url", req.URL).Msg("outbound request")
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("provider", name).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int("body_size", len(resp.Body())).
			Msg("outbound response")
		return nil
	})

	return client
}
