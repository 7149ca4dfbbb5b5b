package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"canteen/config"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// Hasher produces the stored credential digest.
//
// The scheme is SHA-256(password || salt) with a single service-wide salt and
// no stretching. This is a known-weak construction kept for compatibility with
// digests already stored in the users collection; replacing it invalidates
// every existing credential, so any upgrade has to be an explicit migration.
type Hasher struct {
	salt string
}

func NewHasher(cfg *config.Config) *Hasher {
	return &Hasher{
		salt: cfg.Session.Salt,
	}
}

// Hash returns the hex-encoded digest of the password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	sum := sha256.Sum256([]byte(password + h.salt))

	return hex.EncodeToString(sum[:]), nil
}

// Verify checks the provided password against a stored digest.
func (h *Hasher) Verify(password, digest string) error {
	if password == "" || digest == "" {
		return ErrInvalidPassword
	}

	computed, err := h.Hash(password)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		return ErrInvalidPassword
	}

	return nil
}
