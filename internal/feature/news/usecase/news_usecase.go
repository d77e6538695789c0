// Package usecase implements the business logic for the news feature.
package usecase

import (
	"context"
	"time"

	"market_backend/internal/apperr"
	"market_backend/internal/feature/news/domain/entity"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

const (
	// DefaultMaxRecords is the default number of articles requested.
	DefaultMaxRecords = 50
	// MaxRecords caps the request size; GDELT rejects artlist queries above 250.
	MaxRecords = 250
)

// NewsRepository abstracts the article search provider.
// Following Go convention the interface is declared on the consumer side.
type NewsRepository interface {
	// SearchArticles fetches articles matching keyword seen within [start, end].
	SearchArticles(ctx context.Context, keyword string, start, end time.Time, maxRecords int) ([]entity.Article, error)
}

// newsUsecase looks up articles for a keyword on a given day.
type newsUsecase struct {
	news NewsRepository
}

// NewNewsUsecase creates a new newsUsecase instance.
func NewNewsUsecase(news NewsRepository) *newsUsecase {
	return &newsUsecase{news: news}
}

// GetArticles queries the provider for articles about keyword over the full
// UTC day of date. Provider order is preserved; no pagination or dedup.
func (nu *newsUsecase) GetArticles(ctx context.Context, keyword, date string, maxRecords int) ([]entity.Article, error) {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, apperr.ErrInvalidDate
	}

	if maxRecords <= 0 || maxRecords > MaxRecords {
		maxRecords = DefaultMaxRecords
	}

	start := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(target.Year(), target.Month(), target.Day(), 23, 59, 59, 0, time.UTC)

	return nu.news.SearchArticles(ctx, keyword, start, end, maxRecords)
}
