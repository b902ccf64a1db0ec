package campussdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the campus API. It makes unauthenticated calls
// and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

const loginMutation = `mutation Login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		token
		user { id name email role }
	}
}`

// Login exchanges an email and password for a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out struct {
		Login struct {
			Token string `json:"token"`
			User  User   `json:"user"`
		} `json:"login"`
	}

	req := GraphQLRequest{
		Query:         loginMutation,
		OperationName: "Login",
		Variables:     map[string]any{"email": email, "password": password},
	}
	if err := c.do(ctx, "", req, &out); err != nil {
		return nil, err
	}

	return &Session{client: c, token: out.Login.Token, user: out.Login.User}, nil
}

// Query runs an operation without credentials and decodes its data into out.
func (c *SDKClient) Query(ctx context.Context, query string, vars map[string]any, out any) error {
	return c.do(ctx, "", GraphQLRequest{Query: query, Variables: vars}, out)
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
