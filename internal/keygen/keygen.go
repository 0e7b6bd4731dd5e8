// Package keygen produces the public keys and admin secrets handed out for shortened URLs.
package keygen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the set of characters a key is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultKeyLength is the length of keys issued when no other length is configured.
const DefaultKeyLength = 6

// ErrInvalidKeyLength is returned when a non-positive key length is requested.
var ErrInvalidKeyLength = errors.New("invalid key length")

// GenerateKey returns a random key of the given length drawn uniformly from Alphabet.
// The result is not guaranteed to be unique.
func GenerateKey(length int) (string, error) {
	const op = "keygen.GenerateKey"

	if length < 1 {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidKeyLength)
	}

	key, err := gonanoid.Generate(Alphabet, length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate key: %w", op, err)
	}

	return key, nil
}

// GenerateSecret returns a random UUIDv4 string used as an admin token.
func GenerateSecret() string {
	return uuid.NewString()
}
