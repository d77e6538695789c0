// Package http provides the shared outbound HTTP client for provider calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external API calls.
//
// http.DefaultClient carries no timeout, so provider calls always go through
// this client. The transport is explicit for connection stability:
//   - Proxy honors the usual environment variables (HTTP_PROXY etc.)
//   - Dialer.Timeout bounds TCP connection setup below the request timeout
//   - MaxIdleConns/IdleConnTimeout bound the reusable connection pool
//   - Client.Timeout is the whole-request bound passed by the caller
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
