package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIssuer(t *testing.T) {
	t.Run("missing secret is an error", func(t *testing.T) {
		_, err := NewTokenIssuer(JWTConfig{Secret: ""})
		require.Error(t, err)
	})

	t.Run("zero expiry falls back to 24h", func(t *testing.T) {
		issuer, err := NewTokenIssuer(JWTConfig{Secret: "test-secret"})
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, issuer.expiry)
	})
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewTokenIssuer(JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	require.NoError(t, err)

	t.Run("round trip preserves username and role", func(t *testing.T) {
		token, err := issuer.Issue("chefjohn", "chef")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "chefjohn", claims.Username)
		assert.Equal(t, "chef", claims.Role)
		assert.Equal(t, "chefjohn", claims.Subject)
	})

	t.Run("expiry is set from config", func(t *testing.T) {
		token, err := issuer.Issue("chefjohn", "chef")
		require.NoError(t, err)

		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(1*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("token signed with another key rejected", func(t *testing.T) {
		other, err := NewTokenIssuer(JWTConfig{Secret: "other-secret", ExpiryHours: 1})
		require.NoError(t, err)

		token, err := other.Issue("chefjohn", "chef")
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := &AuthClaims{
			Username: "chefjohn",
			Role:     "chef",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "chefjohn",
				IssuedAt:  jwt.NewNumericDate(past),
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = issuer.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{Username: "chefjohn", Role: "chef"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(unsigned)
		assert.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.Error(t, err)
	})
}
