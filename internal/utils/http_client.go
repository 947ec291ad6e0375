package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the dashboard to the bin server.
const UserAgent = "painel-de-clientes"

// HTTPClient is a resty client preconfigured for a JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
