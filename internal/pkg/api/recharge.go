package api

import (
	"context"
	"net/http"

	"mobile-recharge-client/internal/pkg/models"
)

// CreateRecharge submits a recharge with the client-computed amount and
// discount fields.
func (c *Client) CreateRecharge(ctx context.Context, req models.RechargeRequest) (*models.RechargeResponse, error) {
	var resp models.RechargeResponse
	if err := c.request(ctx, http.MethodPost, "/recharge", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetHistory fetches the calling user's recharge history.
func (c *Client) GetHistory(ctx context.Context) ([]models.RechargeTransaction, error) {
	var resp models.RechargeListResponse
	if err := c.request(ctx, http.MethodGet, "/recharge/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recharges, nil
}

// GetAllRecharges fetches every transaction. Admin only, enforced server-side.
func (c *Client) GetAllRecharges(ctx context.Context) ([]models.RechargeTransaction, error) {
	var resp models.RechargeListResponse
	if err := c.request(ctx, http.MethodGet, "/recharge/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recharges, nil
}

// GetTransactionStats fetches the backend's own aggregates. The dashboard
// computes its numbers from the full transaction set instead; this endpoint
// is kept for parity with the backend contract.
func (c *Client) GetTransactionStats(ctx context.Context) (*models.ServerStats, error) {
	var resp models.StatsResponse
	if err := c.request(ctx, http.MethodGet, "/recharge/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
