// Package usecase implements the business logic for the tweets feature.
package usecase

import (
	"context"
	"strings"
	"time"

	"market_backend/internal/feature/tweets/domain/entity"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DefaultMaxResults is the default number of organic results requested.
const DefaultMaxResults = 20

// SearchRepository abstracts the general web-search provider.
// Following Go convention the interface is declared on the consumer side.
type SearchRepository interface {
	// SearchOrganic fetches up to num organic results for query.
	SearchOrganic(ctx context.Context, query string, num int) ([]entity.SearchResult, error)
}

// tweetsUsecase approximates tweets from web-search results pointing at the
// platform's domains.
type tweetsUsecase struct {
	search SearchRepository
}

// NewTweetsUsecase creates a new tweetsUsecase instance.
func NewTweetsUsecase(search SearchRepository) *tweetsUsecase {
	return &tweetsUsecase{search: search}
}

// ApproximateTweets searches the web for keyword restricted to the two
// platform domains, derives an approximate creation time from each post
// identifier and filters candidates to the requested date.
//
// Filtering is deliberately permissive: a candidate is dropped only when a
// timestamp was derived AND the query date parses AND the dates mismatch.
func (tu *tweetsUsecase) ApproximateTweets(ctx context.Context, keyword, date string, maxResults int) ([]entity.Tweet, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	query := keyword + " site:x.com OR site:twitter.com"
	results, err := tu.search.SearchOrganic(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	target, terr := time.Parse(DateLayout, date)
	haveTarget := terr == nil

	tweets := make([]entity.Tweet, 0, len(results))
	for _, r := range results {
		// Keep only results that clearly point at the platform. The source
		// check intentionally matches any source containing a capital "X",
		// mirroring the looseness of the search provider's source labels.
		if !strings.Contains(r.Link, "x.com") &&
			!strings.Contains(r.Link, "twitter.com") &&
			!strings.Contains(r.Source, "X") {
			continue
		}

		var createdAt time.Time
		if id, ok := entity.ExtractTweetID(r.Link); ok {
			createdAt = id.Time()
			if haveTarget && !sameDay(createdAt, target) {
				continue
			}
		}

		user := r.Title
		if user == "" {
			user = r.Source
		}
		if user == "" {
			user = "unknown"
		}
		text := r.Snippet
		if text == "" {
			text = r.Title
		}

		tweets = append(tweets, entity.Tweet{
			User:      user,
			Text:      text,
			CreatedAt: createdAt,
			URL:       r.Link,
		})
	}
	return tweets, nil
}

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
