package ports

import "jokebox/src/core/domain"

// SessionClaims is the identity information carried by a session token.
// The balance is deliberately absent: it changes between requests, so the
// session middleware reads it fresh from storage on every request.
type SessionClaims struct {
	UserID   int64
	Nickname string
	Role     domain.Role
}

// SessionTokens issues and verifies signed session tokens.
type SessionTokens interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*SessionClaims, error)
}
