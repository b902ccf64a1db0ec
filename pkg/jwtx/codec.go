package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired is returned by Verify for an authentic token whose expiry
	// has been reached.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrInvalid is returned by Verify for any other failure: bad signature,
	// wrong algorithm, issuer mismatch or an unusable payload.
	ErrInvalid = errors.New("jwtx: invalid token")

	// ErrMalformed marks a token whose claims cannot be turned into a Payload.
	ErrMalformed = errors.New("jwtx: malformed payload")

	ErrEmptySecret = errors.New("jwtx: empty signing secret")
)

// Codec signs and verifies HS512 session tokens with a single process-wide
// secret.
type Codec struct {
	secret []byte
	issuer string
	method jwt.SigningMethod
}

// NewCodec creates a codec. The issuer is written into every token and
// enforced on verification when non-empty.
func NewCodec(secret []byte, issuer string) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &Codec{
		secret: key,
		issuer: issuer,
		method: jwt.SigningMethodHS512,
	}, nil
}

func (c *Codec) Alg() string { return c.method.Alg() }

// Ready reports whether the codec has a key to sign with.
func (c *Codec) Ready() bool { return c != nil && len(c.secret) > 0 }

// Sign embeds the user and session ids into a token expiring ttl from now.
// The ExpiresAt field of p is ignored.
func (c *Codec) Sign(p Payload, ttl time.Duration) (string, error) {
	claims := NewClaims(p, c.issuer, ttl, time.Now())

	t := jwt.NewWithClaims(c.method, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer and expiry of token and
// returns its payload.
func (c *Codec) Verify(token string) (Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}
	parser := jwt.NewParser(opts...)

	parsed, err := parser.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		// The signature is checked before the claims, so only authentic
		// tokens ever report as expired.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpired
		}
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Payload{}, ErrInvalid
	}

	p, err := claims.Payload()
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return p, nil
}

// Decode reads the payload without checking signature or expiry. Only use it
// to find the session behind a token that already failed Verify.
func (c *Codec) Decode(token string) (Payload, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Payload{}, ErrMalformed
	}
	return claims.Payload()
}
