// Package dto defines data transfer objects for the SerpAPI search responses.
package dto

// SearchResponse represents the JSON response of a search.json query,
// reduced to the organic results consumed here.
type SearchResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Source  string `json:"source"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}
