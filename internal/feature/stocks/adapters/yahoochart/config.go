// Package yahoochart provides a client for the Yahoo Finance chart API.
package yahoochart

// Config holds configuration for the Yahoo Finance chart API client.
type Config struct {
	BaseURL string // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
}
