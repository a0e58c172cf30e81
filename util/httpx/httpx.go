package httpx

import (
	"net"
	"net/http"
	"time"
)

var transport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxConnsPerHost:     100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

var defaultClient = &http.Client{
	Timeout:   10 * time.Second,
	Transport: transport,
}

func Client() *http.Client { return defaultClient }

// NewClient shares the pooled transport but applies its own overall timeout.
// A non-positive timeout returns the default client.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return defaultClient
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}
