package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"market_backend/internal/apperr"
	"market_backend/internal/feature/tweets/domain/entity"
	"market_backend/internal/feature/tweets/usecase"
)

// Status links below embed snowflake identifiers minted at known instants:
// 1746864807736246272 → 2024-01-15T12:00:00Z, 1747189446865846272 → 2024-01-16T09:30:00Z.

// mockSearchRepository is a mock implementation of the SearchRepository interface.
type mockSearchRepository struct {
	SearchOrganicFunc func(ctx context.Context, query string, num int) ([]entity.SearchResult, error)
	Calls             int
}

func (m *mockSearchRepository) SearchOrganic(ctx context.Context, query string, num int) ([]entity.SearchResult, error) {
	m.Calls++
	if m.SearchOrganicFunc != nil {
		return m.SearchOrganicFunc(ctx, query, num)
	}
	return nil, errors.New("SearchOrganicFunc is not implemented")
}

func fixed(results ...entity.SearchResult) *mockSearchRepository {
	return &mockSearchRepository{
		SearchOrganicFunc: func(ctx context.Context, query string, num int) ([]entity.SearchResult, error) {
			return results, nil
		},
	}
}

func TestTweetsUsecase_ApproximateTweets_QueryShape(t *testing.T) {
	t.Parallel()

	mock := &mockSearchRepository{
		SearchOrganicFunc: func(ctx context.Context, query string, num int) ([]entity.SearchResult, error) {
			if query != "Ecopetrol site:x.com OR site:twitter.com" {
				t.Errorf("unexpected query %q", query)
			}
			if num != 20 {
				t.Errorf("expected num 20 (default), got %d", num)
			}
			return nil, nil
		},
	}
	uc := usecase.NewTweetsUsecase(mock)

	tweets, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", "2024-01-15", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 0 {
		t.Errorf("expected no tweets, got %d", len(tweets))
	}
}

func TestTweetsUsecase_ApproximateTweets_PlatformGate(t *testing.T) {
	t.Parallel()

	mock := fixed(
		entity.SearchResult{Title: "a", Link: "https://x.com/user/status/abc", Snippet: "s1"},
		entity.SearchResult{Title: "b", Link: "https://twitter.com/user", Snippet: "s2"},
		entity.SearchResult{Title: "c", Link: "https://example.com/page", Source: "example", Snippet: "s3"},
		// No platform link, but the source contains a capital X; the loose
		// substring gate keeps it.
		entity.SearchResult{Title: "d", Link: "https://mirror.example.com/post", Source: "X (formerly Twitter)", Snippet: "s4"},
	)
	uc := usecase.NewTweetsUsecase(mock)

	tweets, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", "2024-01-15", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tweets) != 3 {
		t.Fatalf("expected 3 tweets, got %d: %+v", len(tweets), tweets)
	}
	for _, tw := range tweets {
		if tw.User == "c" {
			t.Error("expected non-platform result to be dropped")
		}
	}
}

func TestTweetsUsecase_ApproximateTweets_DateFilter(t *testing.T) {
	t.Parallel()

	results := []entity.SearchResult{
		{Title: "on target day", Link: "https://x.com/u/status/1746864807736246272", Snippet: "s"},
		{Title: "on another day", Link: "https://x.com/u/status/1747189446865846272", Snippet: "s"},
		{Title: "no identifier", Link: "https://x.com/u", Snippet: "s"},
	}

	tests := []struct {
		name      string
		date      string
		wantUsers []string
	}{
		{
			// Mismatching derived timestamps are dropped; underivable ones kept.
			name:      "valid date filters derived mismatches only",
			date:      "2024-01-15",
			wantUsers: []string{"on target day", "no identifier"},
		},
		{
			// A malformed query date disables filtering entirely.
			name:      "malformed date keeps every candidate",
			date:      "2024-13-40",
			wantUsers: []string{"on target day", "on another day", "no identifier"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewTweetsUsecase(fixed(results...))

			tweets, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", tt.date, 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var users []string
			for _, tw := range tweets {
				users = append(users, tw.User)
			}
			if len(users) != len(tt.wantUsers) {
				t.Fatalf("expected users %v, got %v", tt.wantUsers, users)
			}
			for i := range users {
				if users[i] != tt.wantUsers[i] {
					t.Errorf("expected user %q at %d, got %q", tt.wantUsers[i], i, users[i])
				}
			}
		})
	}
}

func TestTweetsUsecase_ApproximateTweets_TimestampDerivation(t *testing.T) {
	t.Parallel()

	uc := usecase.NewTweetsUsecase(fixed(
		entity.SearchResult{Title: "with id", Link: "https://x.com/u/status/1746864807736246272", Snippet: "s"},
		entity.SearchResult{Title: "without id", Link: "https://x.com/u", Snippet: "s"},
	))

	tweets, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", "2024-01-15", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}

	want := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	if !tweets[0].CreatedAt.Equal(want) {
		t.Errorf("expected derived time %s, got %s", want, tweets[0].CreatedAt)
	}
	if !tweets[1].CreatedAt.IsZero() {
		t.Errorf("expected zero time for underivable candidate, got %s", tweets[1].CreatedAt)
	}
}

func TestTweetsUsecase_ApproximateTweets_FieldFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   entity.SearchResult
		wantUser string
		wantText string
	}{
		{
			name:     "title and snippet present",
			result:   entity.SearchResult{Title: "Some User on X", Link: "https://x.com/u", Snippet: "tweet text"},
			wantUser: "Some User on X",
			wantText: "tweet text",
		},
		{
			name:     "missing title falls back to source",
			result:   entity.SearchResult{Link: "https://x.com/u", Source: "X", Snippet: "tweet text"},
			wantUser: "X",
			wantText: "tweet text",
		},
		{
			name:     "missing title and source falls back to placeholder",
			result:   entity.SearchResult{Link: "https://x.com/u", Snippet: "tweet text"},
			wantUser: "unknown",
			wantText: "tweet text",
		},
		{
			name:     "missing snippet falls back to title",
			result:   entity.SearchResult{Title: "Some User on X", Link: "https://x.com/u"},
			wantUser: "Some User on X",
			wantText: "Some User on X",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewTweetsUsecase(fixed(tt.result))

			tweets, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", "2024-01-15", 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tweets) != 1 {
				t.Fatalf("expected 1 tweet, got %d", len(tweets))
			}
			if tweets[0].User != tt.wantUser {
				t.Errorf("expected user %q, got %q", tt.wantUser, tweets[0].User)
			}
			if tweets[0].Text != tt.wantText {
				t.Errorf("expected text %q, got %q", tt.wantText, tweets[0].Text)
			}
			if tweets[0].URL != tt.result.Link {
				t.Errorf("expected url %q, got %q", tt.result.Link, tweets[0].URL)
			}
		})
	}
}

func TestTweetsUsecase_ApproximateTweets_SearchErrorPassedThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"missing credential", apperr.ErrMissingCredential},
		{"upstream failure", apperr.Upstream("serpapi", 401, "Invalid API key")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockSearchRepository{
				SearchOrganicFunc: func(ctx context.Context, query string, num int) ([]entity.SearchResult, error) {
					return nil, tt.err
				},
			}
			uc := usecase.NewTweetsUsecase(mock)

			_, err := uc.ApproximateTweets(context.Background(), "Ecopetrol", "2024-01-15", 20)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v passed through, got %v", tt.err, err)
			}
		})
	}
}
