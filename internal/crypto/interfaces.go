package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService turns the configured session secret into the keys used
// to sign and encrypt session cookies and stored session values.
//
// The secret is stretched with Argon2id, so a short operator-chosen secret
// still yields full-length keys. Each key is derived with its own salt:
//
//	HashKey  = Argon2id(secret, "session-hash")   64 bytes, HMAC-SHA256
//	BlockKey = Argon2id(secret, "session-block")  32 bytes, AES-256
type KeyChainService interface {
	// DeriveSessionKeys returns the signing and encryption keys for secret.
	// The same secret always yields the same keys, so cookies survive a
	// restart.
	DeriveSessionKeys(secret string) (SessionKeys, error)
}

// SessionKeys is one securecookie key pair.
type SessionKeys struct {
	HashKey  []byte
	BlockKey []byte
}

// Pairs returns the keys in the order securecookie.CodecsFromPairs expects.
func (k SessionKeys) Pairs() [][]byte {
	return [][]byte{k.HashKey, k.BlockKey}
}
