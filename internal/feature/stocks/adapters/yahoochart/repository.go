package yahoochart

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
	"market_backend/internal/feature/stocks/adapters/yahoochart/dto"
	"market_backend/internal/feature/stocks/domain/entity"
	"market_backend/internal/feature/stocks/usecase"
)

// YahooChartMarket fetches historical price data from the Yahoo Finance
// chart API and implements the stocks MarketRepository.
type YahooChartMarket struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that YahooChartMarket implements MarketRepository.
var _ usecase.MarketRepository = (*YahooChartMarket)(nil)

// NewYahooChartMarket creates a new YahooChartMarket instance with the given
// configuration and HTTP client.
func NewYahooChartMarket(cfg Config, client *http.Client) *YahooChartMarket {
	return &YahooChartMarket{cfg: cfg, client: client}
}

// GetDailySeries fetches daily bars for symbol in [start, end) and returns
// them as entity.Bar values. An unknown symbol yields an empty series, not
// an error; the not-found decision belongs to the usecase.
func (y *YahooChartMarket) GetDailySeries(ctx context.Context, symbol string, start, end time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.UTC().Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.UTC().Unix(), 10))
	q.Set("interval", "1d")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := y.client.Do(req)
	if err != nil {
		return nil, apperr.Upstream("yahoo finance", 0, err.Error())
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// Yahoo reports unknown symbols as 404 with an error object; both map to
	// an empty series so the caller can answer not-found uniformly.
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode >= 400 {
		return nil, apperr.Upstream("yahoo finance", res.StatusCode, "")
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperr.Upstream("yahoo finance", 0, fmt.Sprintf("decode response: %v", err))
	}
	if body.Chart.Error != nil || len(body.Chart.Result) == 0 {
		return nil, nil
	}

	result := body.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	at := func(vals []*float64, i int) *float64 {
		if i >= len(vals) {
			return nil
		}
		return vals[i]
	}

	bars := make([]entity.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := at(quote.Close, i)
		// A row without a close is unusable for variation math; skip it.
		if c == nil {
			continue
		}
		day := time.Unix(ts, 0).UTC()
		bars = append(bars, entity.Bar{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   at(quote.Open, i),
			High:   at(quote.High, i),
			Low:    at(quote.Low, i),
			Close:  *c,
			Volume: at(quote.Volume, i),
		})
	}
	return bars, nil
}
