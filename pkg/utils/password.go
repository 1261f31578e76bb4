package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes plaintext dengan bcrypt (random salt per call)
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", &InvalidInputError{Reason: "password is empty"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// CheckPasswordHash compares plaintext against a stored bcrypt hash.
// Mismatch returns (false, nil); a malformed stored hash returns an error.
func CheckPasswordHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, &InvalidInputError{Reason: "malformed password hash"}
}
