/*
Package campussdk is a small Go client for the campus GraphQL API.

# SDKClient vs Session

  - SDKClient: unauthenticated calls (health probes, public queries) and login
  - Session: calls made with the token returned by login

A typical program logs in once and works through the Session:

	client := campussdk.NewSDKClient("http://localhost:8080")

	session, err := client.Login(ctx, "admin@example.com", "password")
	if err != nil {
		return err
	}
	defer session.Logout(ctx)

	me, err := session.CurrentUser(ctx)

Arbitrary operations go through Query, which decodes the data object into the
supplied value:

	var out struct {
		Courses []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"courses"`
	}
	err := session.Query(ctx, `{ courses { id name } }`, nil, &out)

# Error Handling

GraphQL errors come back as *ResponseError. Auth failures carry the
UNAUTHENTICATED or FORBIDDEN code in their extensions:

	if campussdk.IsUnauthenticated(err) {
		// log in again
	}

Transport failures (non-200 responses) come back as *HTTPError.

# Thread Safety

Sessions are safe for concurrent use.
*/
package campussdk
