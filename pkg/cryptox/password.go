package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// SaltLength is the number of hex characters in a freshly generated salt.
const SaltLength = 16

// Credential is the stored form of a password: the per-user salt and the
// hex-encoded HMAC-SHA512 of the password keyed by that salt.
type Credential struct {
	Salt         string
	PasswordHash string
}

// GenerateSalt returns exactly length lowercase hex characters read from
// crypto/rand.
func GenerateSalt(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("salt length must be positive, got %d", length)
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	return hex.EncodeToString(buf)[:length], nil
}

// HashPassword computes the salted hash of password. The result only depends
// on its inputs so login can recompute and compare it.
func HashPassword(password, salt string) Credential {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(password))

	return Credential{
		Salt:         salt,
		PasswordHash: hex.EncodeToString(mac.Sum(nil)),
	}
}

// NewCredential derives a credential for password with a fresh salt.
func NewCredential(password string) (Credential, error) {
	salt, err := GenerateSalt(SaltLength)
	if err != nil {
		return Credential{}, err
	}
	return HashPassword(password, salt), nil
}

// VerifyPassword recomputes the hash with the stored salt and compares it
// against the stored hash.
func VerifyPassword(password string, c Credential) bool {
	if c.Salt == "" || c.PasswordHash == "" {
		return false
	}
	computed := HashPassword(password, c.Salt)
	return subtle.ConstantTimeCompare([]byte(computed.PasswordHash), []byte(c.PasswordHash)) == 1
}
