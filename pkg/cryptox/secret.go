package cryptox

import (
	"crypto/rand"
	"fmt"
)

// SecretSize is the default size in bytes of a generated signing secret
// (512 bits, one HS512 block).
const SecretSize = 64

// GenerateSecret returns size random bytes from crypto/rand, suitable as an
// HMAC key.
func GenerateSecret(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return buf, nil
}
