// Package password wraps bcrypt for credential hashing. Hashing happens only
// when a plaintext password is being set or changed; re-saving an identity
// without touching the password must never rehash the stored value.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// DefaultCost keeps interactive login latency acceptable.
const DefaultCost = 10

// Hash derives a salted one-way hash from plain using the given work factor.
// A cost outside bcrypt's valid range falls back to DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash using bcrypt's own
// constant-time comparison. A stored hash that bcrypt cannot decode is a
// data-integrity failure reported as domain.ErrCorruptCredential; a plain
// mismatch is (false, nil).
func Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.ErrCorruptCredential
	}
}
