// Package gdelt provides a client for the GDELT DOC 2.0 article search API.
package gdelt

// Config holds configuration for the GDELT API client.
type Config struct {
	BaseURL string // Base URL for the API (e.g., "https://api.gdeltproject.org")
}
