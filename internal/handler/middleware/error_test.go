//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "kind not found", err: errs.NotFound("item not found"), wantStatus: http.StatusNotFound, wantMsg: "item not found"},
		{name: "kind forbidden", err: errs.Wrap(errs.Forbidden("not yours"), "decide"), wantStatus: http.StatusForbidden, wantMsg: "not yours"},
		{name: "unclassified hides details", err: errors.New("pool closed"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := httptest.NewTestEngine()
			engine.Use(middleware.ErrorHandler())
			engine.GET("/x", func(c *gin.Context) { _ = c.Error(tt.err) })

			rec := httptest.PerformRequest(t, engine, http.MethodGet, "/x", nil, "")
			httptest.AssertErrorResponse(t, rec, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	engine := httptest.NewTestEngine()
	engine.Use(middleware.CustomRecovery())
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/boom", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestCORSAllowsActorHeader(t *testing.T) {
	engine := httptest.NewTestEngine()
	engine.Use(middleware.NewCORSMiddleware(corsConfig(), "X-Sharer-User-Id"))
	engine.POST("/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := nethttptest.NewRequest(http.MethodOptions, "/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Sharer-User-Id")
	rec := nethttptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Sharer-User-Id")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func corsConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
}
