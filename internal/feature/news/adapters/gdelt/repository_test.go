package gdelt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market_backend/internal/apperr"
)

func dayWindow() (time.Time, time.Time) {
	return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)
}

func TestGDELTNews_SearchArticles_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("query") != "Ecopetrol" {
			t.Errorf("expected query Ecopetrol, got %s", q.Get("query"))
		}
		if q.Get("mode") != "artlist" {
			t.Errorf("expected mode artlist, got %s", q.Get("mode"))
		}
		if q.Get("format") != "json" {
			t.Errorf("expected format json, got %s", q.Get("format"))
		}
		if q.Get("maxrecords") != "50" {
			t.Errorf("expected maxrecords 50, got %s", q.Get("maxrecords"))
		}
		if q.Get("startdatetime") != "20240115000000" {
			t.Errorf("expected startdatetime 20240115000000, got %s", q.Get("startdatetime"))
		}
		if q.Get("enddatetime") != "20240115235959" {
			t.Errorf("expected enddatetime 20240115235959, got %s", q.Get("enddatetime"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"articles": [
				{
					"title": "Ecopetrol announces results",
					"url": "https://example.com/a",
					"sourcecountry": "Colombia",
					"language": "Spanish",
					"seendate": "20240115T120000Z"
				},
				{
					"title": "Partial article",
					"url": "https://example.com/b"
				}
			]
		}`))
	}))
	defer server.Close()

	news := NewGDELTNews(Config{BaseURL: server.URL}, server.Client())

	start, end := dayWindow()
	articles, err := news.SearchArticles(context.Background(), "Ecopetrol", start, end, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "Ecopetrol announces results" {
		t.Errorf("unexpected title %q", articles[0].Title)
	}
	if articles[0].SourceCountry != "Colombia" {
		t.Errorf("unexpected source country %q", articles[0].SourceCountry)
	}
	if articles[0].Snippet != articles[0].Title {
		t.Errorf("expected snippet to mirror title, got %q", articles[0].Snippet)
	}
	// Missing fields stay empty, they never fail the request.
	if articles[1].SourceCountry != "" || articles[1].Language != "" || articles[1].SeenAt != "" {
		t.Errorf("expected empty optional fields, got %+v", articles[1])
	}
}

func TestGDELTNews_SearchArticles_EmptyList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"articles": []}`))
	}))
	defer server.Close()

	news := NewGDELTNews(Config{BaseURL: server.URL}, server.Client())

	start, end := dayWindow()
	articles, err := news.SearchArticles(context.Background(), "Ecopetrol", start, end, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected no articles, got %d", len(articles))
	}
}

func TestGDELTNews_SearchArticles_Non200(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"service unavailable", http.StatusServiceUnavailable},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			news := NewGDELTNews(Config{BaseURL: server.URL}, server.Client())

			start, end := dayWindow()
			_, err := news.SearchArticles(context.Background(), "Ecopetrol", start, end, 50)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var ue *apperr.UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UpstreamError, got %T", err)
			}
			if ue.Status != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, ue.Status)
			}
		})
	}
}

func TestGDELTNews_SearchArticles_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	news := NewGDELTNews(Config{BaseURL: server.URL}, server.Client())

	start, end := dayWindow()
	_, err := news.SearchArticles(context.Background(), "Ecopetrol", start, end, 50)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
