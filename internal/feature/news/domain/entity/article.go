// Package entity defines the domain models for the news feature.
package entity

// Article represents one news article returned by the search provider.
// Only Title and URL are guaranteed; the rest are best-effort and empty
// when the provider omits them.
type Article struct {
	Title         string
	URL           string
	SourceCountry string
	Language      string
	SeenAt        string // provider timestamp, passed through as-is
	Snippet       string
}
