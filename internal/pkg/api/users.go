package api

import (
	"context"
	"net/http"

	"mobile-recharge-client/internal/pkg/models"
)

// GetUsers lists registered users. Admin only, enforced server-side.
func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var resp models.UsersResponse
	if err := c.request(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// GetProfile fetches the calling user's own profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var resp models.ProfileResponse
	if err := c.request(ctx, http.MethodGet, "/users/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
