package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token and identity. On success the token
// is stored before the response is returned, so any immediately-following
// call already carries it. This is the only call that mutates the stored
// credential as a side effect.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// Register creates an account. The returned token is not stored; callers
// decide whether the new user is signed in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the identity asserted by the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the stored credential and then notifies the server. The
// notification is advisory: the local clear has already happened by the time
// the request is sent, so a dead or hanging server cannot keep the user
// signed in.
func (c *Client) Logout(ctx context.Context) error {
	tok := c.Token()
	c.SetToken("")
	if tok == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return &NormalizedError{Detail: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NormalizedError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalize(resp, genericErrorDetail)
	}
	return nil
}
