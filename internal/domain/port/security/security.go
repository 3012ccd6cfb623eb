package security

import "time"

// PasswordHasher hashes and checks user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues and validates bearer tokens
type TokenIssuer interface {
	// Issue returns a signed token for the user and its expiry
	Issue(userID uint64) (string, time.Time, error)

	// Validate returns the user ID carried by a valid token
	Validate(token string) (uint64, error)
}
