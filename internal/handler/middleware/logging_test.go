//go:build unit

package middleware_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method: method, route: route, status: status})
}

func TestLoggingMiddlewareObservesRoutes(t *testing.T) {
	obs := &recordingObserver{}
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})

	router := httptest.NewTestEngine()
	router.Use(logger.WithObserver(obs, httptest.ActorHeader).LoggingMiddleware())
	router.GET("/items/:id", func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetRequestID(c))
		c.Status(http.StatusNoContent)
	})

	httptest.PerformActorRequest(t, router, http.MethodGet, "/items/42", nil, "someone")
	httptest.PerformActorRequest(t, router, http.MethodGet, "/nowhere", nil, "")

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/items/:id", status: http.StatusNoContent}, obs.seen[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, obs.seen[1])
}
