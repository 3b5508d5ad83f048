package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-recharge-client/internal/pkg/models"
)

func TestGetPlans(t *testing.T) {
	t.Run("passes operator as query parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/plans", r.URL.Path)
			assert.Equal(t, "jio", r.URL.Query().Get("operator"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.PlansResponse{
				Success: true,
				Plans: []models.Plan{
					{MongoID: "p1", Operator: "jio", Name: "Jio Basic", Price: 199, Category: "prepaid"},
				},
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		plans, err := client.GetPlans(context.Background(), "jio")

		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, "p1", plans[0].Identifier())
		assert.Equal(t, 199, plans[0].Price)
	})

	t.Run("omits query when operator is empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.PlansResponse{Success: true, Plans: []models.Plan{}})
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		plans, err := client.GetPlans(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, plans)
	})
}

func TestPlanMutations(t *testing.T) {
	t.Run("update hits PUT /plans/:id with bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/plans/p9", r.URL.Path)
			assert.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.PlanMutationResponse{Success: true})
		}))
		defer server.Close()

		client := newTestClient(server.URL, "admin-tok")
		resp, err := client.UpdatePlan(context.Background(), "p9", models.Plan{Name: "Updated", Price: 299})

		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("delete hits DELETE /plans/:id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/plans/p9", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "admin-tok")
		assert.NoError(t, client.DeletePlan(context.Background(), "p9"))
	})
}

func TestCreateRecharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recharge", r.URL.Path)

		var body models.RechargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "9876543210", body.PhoneNumber)
		assert.Equal(t, 480, body.Amount)
		assert.Equal(t, 500, body.OriginalAmount)
		assert.Equal(t, 20, body.DiscountApplied)
		assert.Equal(t, "SAVE20", body.DiscountCode)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RechargeResponse{
			Success: true,
			Recharge: &models.RechargeTransaction{
				TransactionID: "TXN-1",
				Status:        "success",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	resp, err := client.CreateRecharge(context.Background(), models.RechargeRequest{
		PhoneNumber:     "9876543210",
		Operator:        "airtel",
		Plan:            "p1",
		Amount:          480,
		OriginalAmount:  500,
		DiscountApplied: 20,
		DiscountCode:    "SAVE20",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "TXN-1", resp.Recharge.TransactionID)
}
