// Package network provides a pre-configured HTTP client shared by all remote calls.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// The tool makes few, short-lived requests (remote scale generation and
// release checks), so the pool is kept small and timeouts tight.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
