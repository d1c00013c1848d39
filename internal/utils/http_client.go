package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "munch-accounts-cli"

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL. Every request
// carries the CLI user agent and is bounded by timeout (zero means none).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
