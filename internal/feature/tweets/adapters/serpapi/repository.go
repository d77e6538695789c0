package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"market_backend/internal/apperr"
	"market_backend/internal/feature/tweets/adapters/serpapi/dto"
	"market_backend/internal/feature/tweets/domain/entity"
	"market_backend/internal/feature/tweets/usecase"
)

// errBodyLimit bounds the provider body excerpt carried in upstream errors.
const errBodyLimit = 200

// SerpAPISearch fetches organic Google results from SerpAPI and implements
// the tweets SearchRepository.
type SerpAPISearch struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that SerpAPISearch implements SearchRepository.
var _ usecase.SearchRepository = (*SerpAPISearch)(nil)

// NewSerpAPISearch creates a new SerpAPISearch instance with the given
// configuration and HTTP client.
func NewSerpAPISearch(cfg Config, client *http.Client) *SerpAPISearch {
	return &SerpAPISearch{cfg: cfg, client: client}
}

// SearchOrganic runs a Google search for query and returns up to num organic
// results. A missing API key fails before any network call.
func (s *SerpAPISearch) SearchOrganic(ctx context.Context, query string, num int) ([]entity.SearchResult, error) {
	if s.cfg.APIKey == "" {
		return nil, apperr.ErrMissingCredential
	}

	q := url.Values{}
	q.Set("engine", "google")
	q.Set("q", query)
	q.Set("api_key", s.cfg.APIKey)
	q.Set("num", strconv.Itoa(num))

	u := fmt.Sprintf("%s/search.json?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Upstream("serpapi", 0, err.Error())
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		detail := apperr.Excerpt(string(body), errBodyLimit)
		if detail == "" {
			detail = "empty response body"
		}
		return nil, apperr.Upstream("serpapi", res.StatusCode, detail)
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperr.Upstream("serpapi", 0, fmt.Sprintf("decode response: %v", err))
	}

	results := make([]entity.SearchResult, 0, len(body.OrganicResults))
	for _, r := range body.OrganicResults {
		results = append(results, entity.SearchResult{
			Title:   r.Title,
			Link:    r.Link,
			Source:  r.Source,
			Snippet: r.Snippet,
		})
	}
	return results, nil
}
