package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// A zero timeout leaves requests unbounded. A non-nil jar is attached so the
// session cookie set by the service travels with every later request; a nil
// jar disables cookie handling entirely.
//
//	client := utils.NewHTTPClient("http://localhost:5000", 0, jar)
//	resp, err := client.R().Get("/session-status")
func NewHTTPClient(baseURL string, timeout time.Duration, jar http.CookieJar) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetCookieJar(jar)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
