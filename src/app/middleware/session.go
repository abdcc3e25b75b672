package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jokebox/src/app/http/response"
	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// IdentityKey is the context key for the request identity.
const IdentityKey = "identity"

// Session resolves the authenticated identity for the request.
// It verifies the Bearer session token, loads the current user row so the
// role and joke balance are fresh, and stores a typed Identity in the
// context. Requests without a valid session are rejected.
func Session(repo ports.JokeboxRepository, tokens ports.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		raw := bearerToken(c)
		if raw == "" {
			response.Unauthorized(c, "missing session token", requestID)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			response.Unauthorized(c, err.Error(), requestID)
			c.Abort()
			return
		}

		// The token only proves who the caller is; role and balance come
		// from storage so moderation edits take effect immediately.
		user, err := repo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "session user no longer exists", requestID)
			c.Abort()
			return
		}

		c.Set(IdentityKey, domain.Identity{
			UserID:      user.ID,
			Email:       user.Email,
			Nickname:    user.Nickname,
			Role:        user.Role,
			JokeBalance: user.JokeBalance,
		})
		c.Next()
	}
}

// GetIdentity retrieves the request identity set by the Session middleware.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
