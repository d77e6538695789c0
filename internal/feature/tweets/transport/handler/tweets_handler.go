// Package handler provides the HTTP handlers for the tweets feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/apperr"
	"market_backend/internal/feature/tweets/domain/entity"
	"market_backend/internal/feature/tweets/transport/http/dto"
)

// TweetsUsecase defines the usecase interface for tweet approximation.
// Following Go convention the interface is declared on the consumer side.
type TweetsUsecase interface {
	ApproximateTweets(ctx context.Context, keyword, date string, maxResults int) ([]entity.Tweet, error)
}

// TweetsHandler handles HTTP requests for tweet approximation.
type TweetsHandler struct {
	uc TweetsUsecase
}

// NewTweetsHandler creates a new TweetsHandler instance with the given usecase.
func NewTweetsHandler(uc TweetsUsecase) *TweetsHandler {
	return &TweetsHandler{uc: uc}
}

// GetTweetsHandler approximates tweets for a keyword and date and returns them as JSON.
//
// Example:
// GET /tweets?keyword=Ecopetrol&date=2024-01-15&max_results=20
func (h *TweetsHandler) GetTweetsHandler(c *gin.Context) {
	keyword := c.DefaultQuery("keyword", "Ecopetrol")
	date := c.DefaultQuery("date", "2024-01-15")
	// A non-numeric max_results becomes 0; the usecase substitutes the default.
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "20"))

	tweets, err := h.uc.ApproximateTweets(c.Request.Context(), keyword, date, maxResults)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.TweetItem, 0, len(tweets))
	for _, t := range tweets {
		createdAt := ""
		if !t.CreatedAt.IsZero() {
			createdAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, dto.TweetItem{
			User:      t.User,
			Text:      t.Text,
			CreatedAt: createdAt,
			URL:       t.URL,
		})
	}

	c.JSON(http.StatusOK, dto.TweetsResponse{Keyword: keyword, Date: date, Tweets: out})
}
