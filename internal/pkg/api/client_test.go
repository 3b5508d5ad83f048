package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-recharge-client/internal/pkg/config"
	"mobile-recharge-client/internal/pkg/models"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) string { return string(s) }

func newTestClient(serverURL, token string) *Client {
	var src TokenSource
	if token != "" {
		src = staticToken(token)
	}
	return NewClient(config.APIConfig{
		BaseURL:     serverURL,
		HTTPTimeout: 5 * time.Second,
	}, src)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		mockResponse   interface{}
		mockStatusCode int
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "success response",
			mockResponse: models.LoginResponse{
				Success: true,
				Token:   "jwt-token",
				User:    models.User{ID: "u1", Email: "a@b.com", Role: "user"},
			},
			mockStatusCode: http.StatusOK,
			expectError:    false,
		},
		{
			name:           "server message surfaces",
			mockResponse:   map[string]string{"message": "Invalid credentials"},
			mockStatusCode: http.StatusUnauthorized,
			expectError:    true,
			expectedErrMsg: "Invalid credentials",
		},
		{
			name:           "error key also surfaces",
			mockResponse:   map[string]string{"error": "Account locked"},
			mockStatusCode: http.StatusForbidden,
			expectError:    true,
			expectedErrMsg: "Account locked",
		},
		{
			name:           "empty error body falls back to generic message",
			mockResponse:   nil,
			mockStatusCode: http.StatusInternalServerError,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/auth/login", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				// Login never carries a bearer token
				assert.Empty(t, r.Header.Get("Authorization"))

				var body models.LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "a@b.com", body.Email)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.mockStatusCode)
				if tc.mockResponse != nil {
					json.NewEncoder(w).Encode(tc.mockResponse)
				}
			}))
			defer server.Close()

			client := newTestClient(server.URL, "")
			resp, err := client.Login(context.Background(), models.LoginRequest{
				Email:    "a@b.com",
				Password: "secret123",
			})

			if tc.expectError {
				require.Error(t, err)
				var apiErr *Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.mockStatusCode, apiErr.StatusCode)
				if tc.expectedErrMsg != "" {
					assert.Equal(t, tc.expectedErrMsg, apiErr.Error())
				}
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "jwt-token", resp.Token)
				assert.Equal(t, "u1", resp.User.ID)
			}
		})
	}
}

func TestBearerTokenInjection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RechargeListResponse{Success: true})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok-123")
	_, err := client.GetHistory(context.Background())
	require.NoError(t, err)
}

func TestTransportFailure(t *testing.T) {
	// Point at a closed port so the transport itself fails.
	client := newTestClient("http://127.0.0.1:1", "")

	_, err := client.GetHistory(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, -1, apiErr.StatusCode)
	assert.True(t, apiErr.IsTransport())
}

func TestMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.GetHistory(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}
