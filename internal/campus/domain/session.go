package domain

import "time"

// Session links a live token to a user. It has no expiry of its own, the
// token carries that.
type Session struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

// Principal is the identity attached to a request after it passed the auth
// gate.
type Principal struct {
	User      User
	SessionID int64
}

// LoginResult is what a successful login hands back. User never carries
// credential fields.
type LoginResult struct {
	Token string
	User  User
}
