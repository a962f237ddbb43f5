package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "shareit"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrDisabled     = errors.New("bearer tokens are disabled")
)

// Claims identify the acting user through the registered subject.
type Claims struct {
	ActorID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 actor tokens. A zero-length secret disables it.
type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	parser        *jwt.Parser
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s != nil && len(s.secretKey) > 0
}

func (s *Service) GenerateToken(actorID uuid.UUID) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actorID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	var registered jwt.RegisteredClaims
	token, err := s.parser.ParseWithClaims(tokenString, &registered, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	actorID, err := uuid.Parse(registered.Subject)
	if err != nil || actorID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &Claims{ActorID: actorID, RegisteredClaims: registered}, nil
}
