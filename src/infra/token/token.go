// Package token implements signed session tokens backed by HS256 JWTs.
// It is the adapter for the ports.SessionTokens interface.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
	"jokebox/src/infra/config"
)

// Service issues and verifies session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token service from the auth configuration.
func New(cfg config.AuthConfig) *Service {
	return &Service{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

type sessionClaims struct {
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the user's id, nickname and role.
// The joke balance is intentionally not embedded; it is read fresh from
// storage on every request.
func (s *Service) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Nickname: user.Nickname,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a raw token string.
func (s *Service) Verify(raw string) (*ports.SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domain.NewUnauthorizedError("invalid or expired session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, domain.NewUnauthorizedError("invalid session token subject")
	}

	return &ports.SessionClaims{
		UserID:   userID,
		Nickname: claims.Nickname,
		Role:     domain.Role(claims.Role),
	}, nil
}

var _ ports.SessionTokens = (*Service)(nil)
