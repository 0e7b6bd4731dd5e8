// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL owned by whoever
// holds its secret key, and the errors shared between the layers.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrKeyExists is returned when attempting to create a URL with a key that already exists.
	ErrKeyExists = errors.New("key exists")
	// ErrSecretKeyExists is returned when attempting to create a URL with a secret key that already exists.
	ErrSecretKeyExists = errors.New("secret key exists")
	// ErrURLNotFound is returned when no URL matches the requested key or secret key.
	// For lookups by public key it also covers records that exist but are inactive.
	ErrURLNotFound = errors.New("url not found")
)

// URL represents a shortened URL.
type URL struct {
	ID        int64     // ID is the unique identifier of the URL in the database.
	Key       string    // Key is the public short identifier that redirects to TargetURL.
	SecretKey string    // SecretKey is the admin token granting owner-level operations.
	TargetURL string    // TargetURL is the destination the key resolves to.
	IsActive  bool      // IsActive reports whether the key currently resolves for redirection.
	Clicks    int64     // Clicks is the number of successful redirects through the key.
	CreatedAt time.Time // CreatedAt is the timestamp when the URL was created.
	UpdatedAt time.Time // UpdatedAt is the timestamp when the URL was last updated.
}

// StatusMessage returns a human-readable description of the URL's active state
// after a toggle.
func (u *URL) StatusMessage() string {
	if u.IsActive {
		return "URL successfully activated"
	}
	return "URL successfully deactivated"
}
