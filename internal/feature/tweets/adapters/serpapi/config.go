// Package serpapi provides a client for the SerpAPI Google search API.
package serpapi

// Config holds configuration for the SerpAPI client. APIKey is supplied via
// configuration only; an empty key makes every search fail with a
// configuration error.
type Config struct {
	BaseURL string // Base URL for the API (e.g., "https://serpapi.com")
	APIKey  string // API key for authentication
}
