package api

import (
	"context"
	"net/http"
)

// Profile fetches the user's profile record.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Stats fetches the user's activity summary.
func (c *Client) Stats(ctx context.Context) (*UserStats, error) {
	var stats UserStats
	if err := c.do(ctx, http.MethodGet, "/api/users/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
