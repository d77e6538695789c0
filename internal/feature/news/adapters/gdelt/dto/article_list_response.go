// Package dto defines data transfer objects for the GDELT DOC API responses.
package dto

// ArticleListResponse represents the JSON response of a mode=artlist query.
type ArticleListResponse struct {
	Articles []struct {
		Title         string `json:"title"`
		URL           string `json:"url"`
		SourceCountry string `json:"sourcecountry"`
		Language      string `json:"language"`
		SeenDate      string `json:"seendate"`
	} `json:"articles"`
}
