package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims adalah payload JWT: identity + role
type AuthClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 JWT tokens. The signing secret is
// loaded once at process start and injected here; it is never rotated during
// the process lifetime.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewTokenIssuer(config JWTConfig) (*TokenIssuer, error) {
	if config.Secret == "" {
		return nil, fmt.Errorf("missing JWT signing secret")
	}

	expiry := time.Duration(config.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &TokenIssuer{
		secret: []byte(config.Secret),
		expiry: expiry,
	}, nil
}

// Issue mints a signed token embedding {username, role} and an expiry
func (t *TokenIssuer) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature dan expiry, lalu returns the embedded claims
func (t *TokenIssuer) Verify(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	return claims, nil
}
