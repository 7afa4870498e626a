package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", 60)

	token, exp, err := tm.GenerateToken("amina@example.com", "Amina")
	require.NoError(t, err)
	require.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", claims.Email)
	assert.Equal(t, "Amina", claims.Name)
	assert.Equal(t, "amina@example.com", claims.Subject)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tm := &TokenManager{secret: []byte("secret"), ttl: -1}

	token, _, err := tm.GenerateToken("amina@example.com", "")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", 60).GenerateToken("amina@example.com", "")
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", 60).ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", 60).ParseToken("not.a.jwt")
	require.Error(t, err)
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", 0)
	token, _, err := tm.GenerateToken("amina@example.com", "")
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.NoError(t, err)
}
