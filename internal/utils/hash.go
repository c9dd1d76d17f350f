package utils

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for stored credentials.
const PasswordHashCost = bcrypt.DefaultCost

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// HashPassword returns the bcrypt hash of password.
//
// bcrypt rejects inputs longer than 72 bytes; such passwords produce an
// error rather than being silently truncated.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is reported as a mismatch.
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// DummyPasswordCheck spends the same time as CheckPassword against a real
// hash. Callers use it when the account does not exist so that response
// timing does not leak which usernames are registered.
func DummyPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("case-tracker-dummy"), PasswordHashCost)
	})

	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
