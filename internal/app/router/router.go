// Package router builds the HTTP route table for the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	newshandler "market_backend/internal/feature/news/transport/handler"
	stockshandler "market_backend/internal/feature/stocks/transport/handler"
	tweetshandler "market_backend/internal/feature/tweets/transport/handler"
	"market_backend/internal/platform/http/handler"
)

// NewRouter wires all endpoint handlers into a gin engine.
func NewRouter(stocks *stockshandler.StocksHandler, news *newshandler.NewsHandler,
	tweets *tweetshandler.TweetsHandler) *gin.Engine {
	r := gin.Default()

	// The façade is consumed cross-origin by agent/browser clients.
	r.Use(cors.Default())

	// Static greeting
	r.GET("/", handler.Root)
	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Data endpoints, one external provider each
	r.GET("/stocks", stocks.GetStockHandler)
	r.GET("/news", news.GetNewsHandler)
	r.GET("/tweets", tweets.GetTweetsHandler)

	return r
}
