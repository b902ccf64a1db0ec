package domain

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         Role
	Salt         string // per-user random salt, hex
	PasswordHash string // HMAC-SHA512(password, salt), hex
}

// Public returns a copy of the user with the credential fields cleared.
func (u User) Public() User {
	u.Salt = ""
	u.PasswordHash = ""
	return u
}

// NewUser carries the fields needed to register a user.
type NewUser struct {
	Name     string
	Email    string
	Role     Role
	Password string
}
