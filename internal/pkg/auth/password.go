package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for new credentials
const BcryptCost = 12

// HashPassword hashes a plaintext credential
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// IsHashed reports whether a stored credential is a bcrypt hash
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// CheckPassword compares a plaintext credential with the stored one.
// Snapshots written before hashing was introduced keep plaintext
// credentials; those compare in constant time and should be rehashed by
// the caller (see NeedsRehash).
func CheckPassword(stored, password string) bool {
	if !IsHashed(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NeedsRehash reports whether the stored credential is a legacy plaintext value
func NeedsRehash(stored string) bool {
	return !IsHashed(stored)
}
