package password

import (
	"errors"
	"fmt"

	"github.com/daygrid/calendar-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Hash derives a bcrypt hash of the plaintext password.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), config.BcryptCost())
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}

// Matches reports whether the plaintext password matches the stored hash.
// An empty hash never matches; accounts provisioned through Google sign-in
// have no password.
func Matches(hash, plain string) (bool, error) {
	if hash == "" {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("comparing password: %w", err)
	}

	return true, nil
}
