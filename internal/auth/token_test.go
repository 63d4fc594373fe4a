package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("session-secret", 60)

	tok, expiresAt, err := tm.GenerateToken("user-1", domain.RoleManager)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewTokenManager("right", 60).GenerateToken("user-1", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = NewTokenManager("wrong", 60).ParseToken(tok)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("secret", 60).ParseToken("not.a.jwt")
	assert.Error(t, err)
}
