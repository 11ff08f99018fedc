package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers configure and issue requests
// through the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption tunes the client built by [NewHTTPClient].
type HTTPClientOption func(c *resty.Client)

// WithRetries retries failed GET requests count times, waiting at least wait
// between attempts. A transport error or a 5xx answer counts as failed.
func WithRetries(count int, wait time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
					return false
				}
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(agent string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", agent)
	}
}

// NewHTTPClient returns an independent client; no state is shared between
// instances.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
