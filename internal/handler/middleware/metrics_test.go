//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	shared.NoopMetrics
	requests []recordedRequest
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.requests = append(m.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := &recordingMetrics{}

	r := gin.New()
	r.Use(middleware.MetricsMiddleware(m))
	r.GET("/v1/flavors/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	doGet(r, "/v1/flavors/abc", "")
	doGet(r, "/nowhere", "")

	require.Len(t, m.requests, 2)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/v1/flavors/:id", status: http.StatusTeapot}, m.requests[0])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, m.requests[1])
}
