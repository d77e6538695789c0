// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
	"market_backend/internal/apperr"
	"market_backend/internal/feature/stocks/domain/entity"
	"market_backend/internal/feature/stocks/transport/http/dto"
	"market_backend/internal/feature/stocks/usecase"
)

// StocksUsecase defines the usecase interface for stock metric resolution.
// Following Go convention the interface is declared on the consumer side.
type StocksUsecase interface {
	GetMetrics(ctx context.Context, symbol, date string) (*entity.StockMetrics, error)
}

// StocksHandler handles HTTP requests for stock metrics.
type StocksHandler struct {
	uc StocksUsecase
}

// NewStocksHandler creates a new StocksHandler instance with the given usecase.
func NewStocksHandler(uc StocksUsecase) *StocksHandler {
	return &StocksHandler{uc: uc}
}

// GetStockHandler resolves metrics for a symbol and date and returns them as JSON.
//
// Example:
// GET /stocks?symbol=EC&date=2024-01-15
func (h *StocksHandler) GetStockHandler(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", "EC")
	date := c.DefaultQuery("date", "2024-01-15")

	m, err := h.uc.GetMetrics(c.Request.Context(), symbol, date)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StockResponse{
		Symbol:   m.Symbol,
		Date:     m.Date.Format(usecase.DateLayout),
		Close:    m.Close,
		Open:     m.Open,
		High:     m.High,
		Low:      m.Low,
		Volume:   m.Volume,
		VarDay:   m.VarDay,
		VarWeek:  m.VarWeek,
		VarMonth: m.VarMonth,
	})
}
