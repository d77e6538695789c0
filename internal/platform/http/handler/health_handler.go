// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/api"
)

// Health handles the /healthz endpoint for service health checks.
// Responses are never cached.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}

// Root handles the / endpoint with a static greeting.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Stock metrics, news and tweets API."})
}
