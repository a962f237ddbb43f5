package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxActorIDKey = "actor_id"

var (
	errActorRequired = errs.New("actor identity required")
	errInvalidActor  = errs.New("invalid actor id")
	errInvalidToken  = errs.New("invalid or expired token")
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	Enabled() bool
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	header string
	tokens TokenValidator
}

func NewAuthMiddleware(cfg config.AuthConfig, tokens TokenValidator) *AuthMiddleware {
	header := cfg.ActorHeader
	if header == "" {
		header = "X-Sharer-User-Id"
	}
	return &AuthMiddleware{header: header, tokens: tokens}
}

// RequireActor resolves the acting user from the gateway header, falling back to a Bearer token.
func (m *AuthMiddleware) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := strings.TrimSpace(c.GetHeader(m.header)); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidActor), "Invalid "+m.header+" header", nil)
				return
			}
			c.Set(ctxActorIDKey, id)
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" || m.tokens == nil || !m.tokens.Enabled() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errActorRequired, "Actor identity required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxActorIDKey, claims.ActorID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := actorID.(uuid.UUID)
	return id, ok
}
