package api

import (
	"context"
	"fmt"
	"net/http"

	"mobile-recharge-client/internal/pkg/models"
)

// GetPlans lists plans, optionally filtered by operator on the server side.
func (c *Client) GetPlans(ctx context.Context, operator string) ([]models.Plan, error) {
	path := buildQuery("/plans", map[string]string{"operator": operator})
	var resp models.PlansResponse
	if err := c.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Plans, nil
}

// CreatePlan adds a plan to the catalog. Admin only, enforced server-side.
func (c *Client) CreatePlan(ctx context.Context, plan models.Plan) (*models.PlanMutationResponse, error) {
	var resp models.PlanMutationResponse
	if err := c.request(ctx, http.MethodPost, "/plans", plan, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdatePlan(ctx context.Context, id string, plan models.Plan) (*models.PlanMutationResponse, error) {
	var resp models.PlanMutationResponse
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/plans/%s", id), plan, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/plans/%s", id), nil, nil)
}
