// Package usecase implements the business logic for the stocks feature.
package usecase

import (
	"context"
	"sort"
	"time"

	"market_backend/internal/apperr"
	"market_backend/internal/feature/stocks/domain/entity"
)

// DateLayout is the wire format for calendar dates in requests and responses.
const DateLayout = "2006-01-02"

// fetchWindowDays is the historical lookback of the fetch window. 40 calendar
// days leave enough trailing trading days for the 30-day variation even
// across weekends and holidays.
const fetchWindowDays = 40

// MarketRepository abstracts the historical price provider.
// Following Go convention the interface is declared on the consumer side.
type MarketRepository interface {
	// GetDailySeries fetches daily bars for symbol in [start, end).
	GetDailySeries(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error)
}

// stocksUsecase resolves stock metrics for a symbol and date.
type stocksUsecase struct {
	market MarketRepository
}

// NewStocksUsecase creates a new stocksUsecase instance.
func NewStocksUsecase(market MarketRepository) *stocksUsecase {
	return &stocksUsecase{market: market}
}

// GetMetrics fetches the price series around the requested date, resolves the
// target trading day (latest entry on or before the date) and computes the
// day/week/month variations against earlier closes from the same series.
func (su *stocksUsecase) GetMetrics(ctx context.Context, symbol, date string) (*entity.StockMetrics, error) {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, apperr.ErrInvalidDate
	}

	start := target.AddDate(0, 0, -fetchWindowDays)
	end := target.AddDate(0, 0, 1)

	bars, err := su.market.GetDailySeries(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, apperr.ErrNoData
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	targetBar, ok := entity.LatestOnOrBefore(bars, target)
	if !ok {
		return nil, apperr.ErrNoDataBeforeDate
	}

	// closeAt resolves the close at daysBack calendar days before the target
	// date, reusing the already-fetched series. A reference date before the
	// window start yields nil and the variation is simply omitted.
	closeAt := func(daysBack int) *float64 {
		ref := target.AddDate(0, 0, -daysBack)
		bar, ok := entity.LatestOnOrBefore(bars, ref)
		if !ok {
			return nil
		}
		c := bar.Close
		return &c
	}

	return &entity.StockMetrics{
		Symbol:   symbol,
		Date:     targetBar.Date,
		Open:     targetBar.Open,
		High:     targetBar.High,
		Low:      targetBar.Low,
		Close:    targetBar.Close,
		Volume:   targetBar.Volume,
		VarDay:   entity.VarRel(targetBar.Close, closeAt(1)),
		VarWeek:  entity.VarRel(targetBar.Close, closeAt(7)),
		VarMonth: entity.VarRel(targetBar.Close, closeAt(30)),
	}, nil
}
