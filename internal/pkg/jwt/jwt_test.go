package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-1", time.Minute)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TypeAccess, claims.TokenType)
}

func TestSignWithOptionsCarriesSessionAndType(t *testing.T) {
	token, err := SignWithOptions("user-1", time.Minute, SignOptions{
		SessionID: "sess-9",
		TokenType: TypeRefresh,
	})
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "sess-9", claims.SessionID)
	assert.Equal(t, TypeRefresh, claims.TokenType)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign("user-1", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	SetSecret("secret-a")
	token, err := Sign("user-1", time.Minute)
	require.NoError(t, err)

	SetSecret("secret-b")
	defer SetSecret(defaultSecret)

	_, err = Parse(token)
	assert.Error(t, err)
}
