package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	s := NewJWTService("test-secret")

	token, err := s.GenerateAccessToken("user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	s := NewJWTService("test-secret")

	token, err := s.GenerateRefreshToken("user@example.com")
	assert.NoError(t, err)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	s := NewJWTService("test-secret")
	// Freeze the issuing clock far enough in the past that even the
	// 7-day refresh expiry has elapsed.
	s.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	accessToken, err := s.GenerateAccessToken("user@example.com")
	assert.NoError(t, err)
	refreshToken, err := s.GenerateRefreshToken("user@example.com")
	assert.NoError(t, err)

	_, err = s.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = s.ValidateToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	s := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	foreign, err := other.GenerateAccessToken("user@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed token", token: "not-a-jwt"},
		{name: "empty token", token: ""},
		{name: "wrong secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_RotationProducesDistinctTokens(t *testing.T) {
	s := NewJWTService("test-secret")
	base := time.Now()
	calls := 0
	// Advance one second per issuance so consecutive tokens cannot
	// collide on identical timestamps.
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	first, err := s.GenerateRefreshToken("user@example.com")
	assert.NoError(t, err)
	second, err := s.GenerateRefreshToken("user@example.com")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
