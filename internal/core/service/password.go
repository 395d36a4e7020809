package service

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a bcrypt hash of a plaintext secret.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyStoredPassword compares a submitted plaintext secret against the
// stored credential. It returns whether they match and whether the stored
// value must be rewritten as a hash.
//
// The stored value is interpreted as a bcrypt hash first. Only when bcrypt
// rejects it as not a parseable hash at all — never on an ordinary mismatch —
// does the comparison fall back to direct equality against the plaintext.
// This fallback is a one-time migration shim for seeded accounts whose secret
// was provisioned in plaintext; a match through it signals that the caller
// must persist a freshly hashed secret.
func verifyStoredPassword(stored, submitted string) (match, rehashNeeded bool) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted))
	if err == nil {
		return true, false
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, false
	}

	// Stored value is not a valid bcrypt hash: legacy plaintext record.
	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1 {
		return true, true
	}
	return false, false
}
