package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"shareit/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets browsers send the actor header and read the Location of created bookings.
func NewCORSMiddleware(cfg config.CORSConfig, actorHeader string) gin.HandlerFunc {
	allowHeaders := withHeader(cfg.AllowHeaders, actorHeader)
	exposeHeaders := withHeader(cfg.ExposeHeaders, "Location")

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withHeader(cfg.AllowMethods, http.MethodPatch),
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}

func withHeader(list []string, h string) []string {
	if h == "" || slices.ContainsFunc(list, func(v string) bool { return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h) }) {
		return list
	}
	return append(slices.Clone(list), h)
}
