package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"market_backend/internal/apperr"
	"market_backend/internal/feature/news/adapters/gdelt/dto"
	"market_backend/internal/feature/news/domain/entity"
	"market_backend/internal/feature/news/usecase"
)

// compactLayout is the YYYYMMDDHHMMSS timestamp format GDELT requires.
const compactLayout = "20060102150405"

// GDELTNews fetches articles from the GDELT DOC 2.0 API and implements the
// news NewsRepository.
type GDELTNews struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that GDELTNews implements NewsRepository.
var _ usecase.NewsRepository = (*GDELTNews)(nil)

// NewGDELTNews creates a new GDELTNews instance with the given configuration
// and HTTP client.
func NewGDELTNews(cfg Config, client *http.Client) *GDELTNews {
	return &GDELTNews{cfg: cfg, client: client}
}

// SearchArticles issues a single artlist query for keyword within [start, end]
// and maps each raw article into entity.Article. Missing article fields stay
// empty rather than failing the request.
func (g *GDELTNews) SearchArticles(ctx context.Context, keyword string, start, end time.Time, maxRecords int) ([]entity.Article, error) {
	q := url.Values{}
	q.Set("query", keyword)
	q.Set("mode", "artlist")
	q.Set("maxrecords", strconv.Itoa(maxRecords))
	q.Set("format", "json")
	q.Set("startdatetime", start.UTC().Format(compactLayout))
	q.Set("enddatetime", end.UTC().Format(compactLayout))

	u := fmt.Sprintf("%s/api/v2/doc/doc?%s", g.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, apperr.Upstream("gdelt", 0, err.Error())
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("gdelt", res.StatusCode, "")
	}

	var body dto.ArticleListResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperr.Upstream("gdelt", 0, fmt.Sprintf("decode response: %v", err))
	}

	articles := make([]entity.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, entity.Article{
			Title:         a.Title,
			URL:           a.URL,
			SourceCountry: a.SourceCountry,
			Language:      a.Language,
			SeenAt:        a.SeenDate,
			// GDELT artlist carries no body text; the title doubles as snippet.
			Snippet: a.Title,
		})
	}
	return articles, nil
}
