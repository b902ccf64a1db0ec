package campussdk

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
)

// ErrNotLoggedIn is returned by Session methods after Logout.
var ErrNotLoggedIn = errors.New("campussdk: session is logged out")

// ResponseError wraps the errors list of a GraphQL response.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// HasCode reports whether any of the errors carries code.
func (e *ResponseError) HasCode(code string) bool {
	for _, ge := range e.Errors {
		if ge.Code() == code {
			return true
		}
	}
	return false
}

// HTTPError is returned for responses that are not a GraphQL result.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("campussdk: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthenticated reports whether err is a GraphQL UNAUTHENTICATED error.
func IsUnauthenticated(err error) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.HasCode(CodeUnauthenticated)
}

// IsForbidden reports whether err is a GraphQL FORBIDDEN error.
func IsForbidden(err error) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.HasCode(CodeForbidden)
}
