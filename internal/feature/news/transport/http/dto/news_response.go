// Package dto defines the HTTP response DTOs for the news feature.
package dto

// NewsItem is one article in the GET /news response.
type NewsItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	SourceCountry string `json:"source_country,omitempty"`
	Language      string `json:"language,omitempty"`
	SeenAt        string `json:"seen_at,omitempty"`
	Snippet       string `json:"snippet,omitempty"`
}

// NewsResponse is the JSON body returned by GET /news. Date echoes the
// requested date string verbatim.
type NewsResponse struct {
	Keyword  string     `json:"keyword"`
	Date     string     `json:"date"`
	Articles []NewsItem `json:"articles"`
}
