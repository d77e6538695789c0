// Package dto defines the HTTP response DTOs for the tweets feature.
package dto

// TweetItem is one approximated post in the GET /tweets response.
// CreatedAt is an ISO 8601 timestamp or empty when none could be derived.
type TweetItem struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url,omitempty"`
}

// TweetsResponse is the JSON body returned by GET /tweets. Date echoes the
// requested date string verbatim.
type TweetsResponse struct {
	Keyword string      `json:"keyword"`
	Date    string      `json:"date"`
	Tweets  []TweetItem `json:"tweets"`
}
