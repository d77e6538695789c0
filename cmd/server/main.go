package main

import (
	"log"

	"market_backend/internal/app/router"
	"market_backend/internal/config"
	"market_backend/internal/feature/news/adapters/gdelt"
	newshandler "market_backend/internal/feature/news/transport/handler"
	newsusecase "market_backend/internal/feature/news/usecase"
	"market_backend/internal/feature/stocks/adapters/yahoochart"
	stockshandler "market_backend/internal/feature/stocks/transport/handler"
	stocksusecase "market_backend/internal/feature/stocks/usecase"
	"market_backend/internal/feature/tweets/adapters/serpapi"
	tweetshandler "market_backend/internal/feature/tweets/transport/handler"
	tweetsusecase "market_backend/internal/feature/tweets/usecase"
	platformhttp "market_backend/internal/platform/http"
)

func main() {
	cfg := config.FromEnv()

	// One shared client; every provider call inherits the same timeout.
	client := platformhttp.NewHTTPClient(cfg.ClientTimeout)

	// Repository
	market := yahoochart.NewYahooChartMarket(yahoochart.Config{BaseURL: cfg.YahooBaseURL}, client)
	newsRepo := gdelt.NewGDELTNews(gdelt.Config{BaseURL: cfg.GDELTBaseURL}, client)
	searchRepo := serpapi.NewSerpAPISearch(serpapi.Config{BaseURL: cfg.SerpAPIBaseURL, APIKey: cfg.SerpAPIKey}, client)

	// Usecase
	stocksUC := stocksusecase.NewStocksUsecase(market)
	newsUC := newsusecase.NewNewsUsecase(newsRepo)
	tweetsUC := tweetsusecase.NewTweetsUsecase(searchRepo)

	// Handler
	stocksH := stockshandler.NewStocksHandler(stocksUC)
	newsH := newshandler.NewNewsHandler(newsUC)
	tweetsH := tweetshandler.NewTweetsHandler(tweetsUC)

	router := router.NewRouter(stocksH, newsH, tweetsH)

	if cfg.SerpAPIKey == "" {
		log.Println("[WARN] SERPAPI_API_KEY is not set. /tweets will fail until it is configured.")
	}

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
