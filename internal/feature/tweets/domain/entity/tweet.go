// Package entity defines the domain models for the tweets feature.
package entity

import (
	"strconv"
	"strings"
	"time"
)

// twitterEpochMS is the custom epoch of the platform's snowflake ID scheme
// (2010-11-04T01:42:54.657Z), in milliseconds since the Unix epoch.
const twitterEpochMS = 1288834974657

// TweetID is a snowflake-style post identifier that embeds its creation time
// in the upper bits.
type TweetID int64

// Time returns the approximate UTC creation time encoded in the identifier.
func (id TweetID) Time() time.Time {
	ms := (int64(id) >> 22) + twitterEpochMS
	return time.UnixMilli(ms).UTC()
}

// ExtractTweetID pulls the post identifier out of a status URL such as
// https://x.com/user/status/1234567890123456789?s=20. The second return
// value is false when the link carries no parseable identifier; that is an
// expected outcome, not an error.
func ExtractTweetID(link string) (TweetID, bool) {
	parts := strings.Split(link, "/")
	for i, p := range parts {
		if p != "status" {
			continue
		}
		if i+1 >= len(parts) {
			return 0, false
		}
		raw, _, _ := strings.Cut(parts[i+1], "?")
		if raw == "" || !allDigits(raw) {
			return 0, false
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, false
		}
		return TweetID(id), true
	}
	return 0, false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SearchResult is one organic web-search result considered as a tweet candidate.
type SearchResult struct {
	Title   string
	Link    string
	Source  string
	Snippet string
}

// Tweet represents an approximated post reconstructed from a search result.
// CreatedAt is the zero time when no timestamp could be derived from the link.
type Tweet struct {
	User      string
	Text      string
	CreatedAt time.Time
	URL       string
}
