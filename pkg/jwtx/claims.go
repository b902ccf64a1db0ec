package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a session token stays valid after issuance.
const DefaultTokenTTL = 600 * time.Second

// Claims is the JWT body of a session token. The subject carries the user id
// and SID the server-side session id.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID. A pointer because 0 is a valid session id and a missing
	// claim must be told apart from it.
	SID *int64 `json:"sid,omitempty"`
}

// Payload is the decoded, typed content of a token.
type Payload struct {
	UserID    int64
	SessionID int64
	ExpiresAt time.Time
}

// NewClaims builds the claims for a token that expires ttl after now.
func NewClaims(p Payload, issuer string, ttl time.Duration, now time.Time) Claims {
	sid := p.SessionID
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID: &sid,
	}
}

// Payload converts the claims into a typed payload. It fails with
// ErrMalformed when the subject is not a user id or the session id is absent.
func (c *Claims) Payload() (Payload, error) {
	if c.SID == nil {
		return Payload{}, ErrMalformed
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Payload{}, ErrMalformed
	}

	p := Payload{UserID: userID, SessionID: *c.SID}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p, nil
}
