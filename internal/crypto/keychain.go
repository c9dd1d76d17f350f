// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	hashKeyLength  = 64
	blockKeyLength = 32

	hashKeySalt  = "case-tracker/session-hash"
	blockKeySalt = "case-tracker/session-block"
)

// ErrEmptySecret is returned when no session secret is configured.
var ErrEmptySecret = errors.New("session secret is empty")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so tests can use a
	// cheaper setting.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// DeriveSessionKeys implements [KeyChainService].
func (k *keyChainService) DeriveSessionKeys(secret string) (SessionKeys, error) {
	if secret == "" {
		return SessionKeys{}, ErrEmptySecret
	}

	return SessionKeys{
		HashKey:  k.derive(secret, hashKeySalt, hashKeyLength),
		BlockKey: k.derive(secret, blockKeySalt, blockKeyLength),
	}, nil
}

func (k *keyChainService) derive(secret, salt string, length uint32) []byte {
	return argon2.IDKey([]byte(secret), []byte(salt), k.argonTime, k.argonMemory, k.argonThreads, length)
}
