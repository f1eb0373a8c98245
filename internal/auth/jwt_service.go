package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Token purposes carried in the token_type claim. Verification rejects a
// token presented for the wrong purpose.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned for any token that fails verification.
// Malformed, badly signed and expired tokens are indistinguishable to
// callers.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims. The subject is the user email; TokenType
// separates access tokens from refresh tokens.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed tokens. Verification is
// stateless: validity is decided entirely from the token's signed content
// plus the current time, with no server-side lookup.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// GenerateAccessToken issues a short-lived access token for the subject.
func (s *JWTService) GenerateAccessToken(email string) (string, error) {
	return s.generate(email, TokenTypeAccess, AccessTokenExpiry)
}

// GenerateRefreshToken issues a long-lived refresh token for the subject.
func (s *JWTService) GenerateRefreshToken(email string) (string, error) {
	return s.generate(email, TokenTypeRefresh, RefreshTokenExpiry)
}

func (s *JWTService) generate(email, tokenType string, expiry time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
