package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := HashPassword("chef123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "chef123", hash)

		match, err := CheckPasswordHash("chef123", hash)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("same password hashes differently per call", func(t *testing.T) {
		first, err := HashPassword("chef123")
		require.NoError(t, err)
		second, err := HashPassword("chef123")
		require.NoError(t, err)

		// bcrypt salt random, jadi dua hash tidak pernah sama
		assert.NotEqual(t, first, second)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := HashPassword("")
		require.Error(t, err)

		var invalidInput *InvalidInputError
		assert.ErrorAs(t, err, &invalidInput)
	})
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("wrong password returns false without error", func(t *testing.T) {
		match, err := CheckPasswordHash("wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, match)
	})

	t.Run("malformed hash returns error", func(t *testing.T) {
		match, err := CheckPasswordHash("correct-password", "not-a-bcrypt-hash")
		require.Error(t, err)
		assert.False(t, match)

		var invalidInput *InvalidInputError
		assert.ErrorAs(t, err, &invalidInput)
	})
}
