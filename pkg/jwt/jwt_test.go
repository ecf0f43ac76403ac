package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-bytes-long!"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, "seniorconnect-test", 24)

	token, err := tm.GenerateToken("user-1", "priya@uem.edu.in", "priya")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "priya@uem.edu.in", claims.Email)
	assert.Equal(t, "priya", claims.Name)
	assert.Equal(t, "seniorconnect-test", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, "seniorconnect-test", 24)

	_, err := tm.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuing := NewTokenManager(testSecret, "seniorconnect-test", 24)
	validating := NewTokenManager("a-completely-different-32-byte-key!", "seniorconnect-test", 24)

	token, err := issuing.GenerateToken("user-1", "priya@uem.edu.in", "priya")
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	// TTL of 0 hours expires immediately
	tm := NewTokenManager(testSecret, "seniorconnect-test", 0)

	token, err := tm.GenerateToken("user-1", "priya@uem.edu.in", "priya")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_GetExpirationTime(t *testing.T) {
	tm := NewTokenManager(testSecret, "seniorconnect-test", 24)
	assert.Equal(t, 24*time.Hour, tm.GetExpirationTime())
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc", "abc"))
	assert.False(t, TimingSafeCompare("abc", "abd"))
	assert.False(t, TimingSafeCompare("abc", "abcd"))
	assert.True(t, TimingSafeCompare("", ""))
}
