// Package handler provides the HTTP handlers for the news feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/apperr"
	"market_backend/internal/feature/news/domain/entity"
	"market_backend/internal/feature/news/transport/http/dto"
)

// NewsUsecase defines the usecase interface for article lookup.
// Following Go convention the interface is declared on the consumer side.
type NewsUsecase interface {
	GetArticles(ctx context.Context, keyword, date string, maxRecords int) ([]entity.Article, error)
}

// NewsHandler handles HTTP requests for news lookup.
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler creates a new NewsHandler instance with the given usecase.
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNewsHandler looks up articles for a keyword over one day and returns them as JSON.
//
// Example:
// GET /news?keyword=Ecopetrol&date=2024-01-15&maxrecords=50
func (h *NewsHandler) GetNewsHandler(c *gin.Context) {
	keyword := c.DefaultQuery("keyword", "Ecopetrol")
	date := c.DefaultQuery("date", "2024-01-15")
	// A non-numeric maxrecords becomes 0; the usecase substitutes the default.
	maxRecords, _ := strconv.Atoi(c.DefaultQuery("maxrecords", "50"))

	articles, err := h.uc.GetArticles(c.Request.Context(), keyword, date, maxRecords)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.NewsItem, 0, len(articles))
	for _, a := range articles {
		out = append(out, dto.NewsItem{
			Title:         a.Title,
			URL:           a.URL,
			SourceCountry: a.SourceCountry,
			Language:      a.Language,
			SeenAt:        a.SeenAt,
			Snippet:       a.Snippet,
		})
	}

	c.JSON(http.StatusOK, dto.NewsResponse{Keyword: keyword, Date: date, Articles: out})
}
