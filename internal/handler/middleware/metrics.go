package middleware

import (
	"time"

	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records latency per route template, so /flavors/:id is one series.
func MetricsMiddleware(m shared.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
