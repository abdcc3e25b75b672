package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokebox/src/core/domain"
	"jokebox/src/infra/config"
)

func testService(secret string, ttl time.Duration) *Service {
	return New(config.AuthConfig{JWTSecret: secret, TokenTTL: ttl})
}

func TestIssueAndVerify(t *testing.T) {
	svc := testService("test-secret", time.Hour)
	user := &domain.User{ID: 42, Nickname: "alice", Role: domain.RoleModerator, JokeBalance: 3}

	raw, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Nickname)
	assert.Equal(t, domain.RoleModerator, claims.Role)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc := testService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := testService("secret-one", time.Hour)
	verifier := testService("secret-two", time.Hour)

	raw, err := issuer.Issue(&domain.User{ID: 1, Nickname: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestVerify_RejectsExpired(t *testing.T) {
	svc := testService("test-secret", -time.Minute)

	raw, err := svc.Issue(&domain.User{ID: 1, Nickname: "alice", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.True(t, domain.IsUnauthorized(err))
}
