package service

import "errors"

// AuthenticationError means the caller could not be identified. The Reason is
// safe to show to clients.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

// Extensions is picked up by the GraphQL runtime and copied into the error's
// extensions object.
func (e *AuthenticationError) Extensions() map[string]any {
	return map[string]any{"code": "UNAUTHENTICATED"}
}

// AuthorizationError means the caller was identified but its role is not
// allowed to run the operation.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

func (e *AuthorizationError) Extensions() map[string]any {
	return map[string]any{"code": "FORBIDDEN"}
}

var (
	ErrTokenRequired      = &AuthenticationError{Reason: "Token Required"}
	ErrSessionExpired     = &AuthenticationError{Reason: "Session Expired"}
	ErrBadToken           = &AuthenticationError{Reason: "Bad Token"}
	ErrInvalidSession     = &AuthenticationError{Reason: "Invalid Session"}
	ErrInvalidTokenOrUser = &AuthenticationError{Reason: "Invalid Token or User"}
	ErrUserNotFound       = &AuthenticationError{Reason: "User not Found"}
	ErrBadLogin           = &AuthenticationError{Reason: "Bad Login or Password"}

	ErrNotPermitted = &AuthorizationError{Reason: "Operation Not Permitted"}
)

var ErrInvalidRole = errors.New("invalid role")

// Reason extracts the client-facing reason of an auth error, or "" when err is
// not one.
func Reason(err error) string {
	var authn *AuthenticationError
	if errors.As(err, &authn) {
		return authn.Reason
	}
	var authz *AuthorizationError
	if errors.As(err, &authz) {
		return authz.Reason
	}
	return ""
}
