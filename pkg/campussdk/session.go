package campussdk

import (
	"context"
	"sync"
)

// Session is a logged in client. Its token is sent with every call until
// Logout.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
	user  User
}

// Token returns the session token, or "" after Logout.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the user reported by login. Sessions built from a bare token
// have a zero User until CurrentUser is called.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Query runs an operation as the session's user and decodes its data into
// out.
func (s *Session) Query(ctx context.Context, query string, vars map[string]any, out any) error {
	token := s.Token()
	if token == "" {
		return ErrNotLoggedIn
	}
	return s.client.do(ctx, token, GraphQLRequest{Query: query, Variables: vars}, out)
}

// CurrentUser asks the server who the session belongs to.
func (s *Session) CurrentUser(ctx context.Context) (*User, error) {
	var out struct {
		CurrentUser *User `json:"currentUser"`
	}
	if err := s.Query(ctx, `{ currentUser { id name email role } }`, nil, &out); err != nil {
		return nil, err
	}
	if out.CurrentUser != nil {
		s.mu.Lock()
		s.user = *out.CurrentUser
		s.mu.Unlock()
	}
	return out.CurrentUser, nil
}

// Logout ends the session on the server and forgets the token.
func (s *Session) Logout(ctx context.Context) error {
	var out struct {
		Logout bool `json:"logout"`
	}
	if err := s.Query(ctx, `mutation { logout }`, nil, &out); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
