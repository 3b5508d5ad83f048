// Package api wraps every outbound call to the recharge backend behind one
// request primitive: bearer-token injection, JSON bodies, and a normalized
// error shape. No retries and no timeout policy beyond the transport's own;
// failures propagate to the caller immediately.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"mobile-recharge-client/internal/pkg/config"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
)

// TokenSource yields the current bearer token, or "" when no session exists.
// The durable store implements this so the token is re-read on every request,
// matching last-write-wins across concurrently running client instances.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Client talks to the recharge backend.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(cfg config.APIConfig, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// errorBody covers both message shapes the backend uses on failures.
type errorBody struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

// request is the single outbound primitive. out may be nil when the caller
// does not care about the response body.
func (c *Client) request(ctx context.Context, method, path string, body, out interface{}) error {
	endpoint := c.baseURL + path

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorAPIRequestFailed, err, slog.String("path", path))
			return NewError(fmt.Errorf(log_messages.ErrorFailedToEncodeAPIBody, err))
		}
		payload = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorAPIRequestFailed, err, slog.String("path", path))
		return NewError(fmt.Errorf(log_messages.ErrorFailedToBuildAPIRequest, err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger.CtxDebug(ctx, log_messages.SendingAPIRequest,
		slog.String("method", method),
		slog.String("path", path),
	)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorAPIRequestFailed, err,
			slog.String("method", method),
			slog.String("path", path),
		)
		return NewError(fmt.Errorf(log_messages.ErrorFailedToSendAPIRequest, err), -1)
	}
	defer func() {
		if cerr := httpResp.Body.Close(); cerr != nil {
			logger.CtxError(ctx, log_messages.ErrorFailedToCloseAPIRespBody, cerr)
		}
	}()

	return c.processResponseBody(ctx, path, httpResp.StatusCode, httpResp.Body, out)
}

func (c *Client) processResponseBody(
	ctx context.Context,
	path string,
	statusCode int,
	body io.Reader,
	out interface{},
) error {
	logger.CtxDebug(ctx, log_messages.ReceivedAPIResponse,
		slog.String("path", path),
		slog.Int("status", statusCode),
	)

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(body).Decode(out); err != nil {
			logger.CtxError(ctx, log_messages.ErrorAPIRequestFailed, err, slog.String("path", path))
			return NewError(fmt.Errorf(log_messages.ErrorFailedToDecodeAPIBody, err), statusCode)
		}
		return nil
	}

	apiErr := &Error{StatusCode: statusCode}
	var serverMsg errorBody
	if err := json.NewDecoder(body).Decode(&serverMsg); err == nil {
		switch {
		case serverMsg.Message != "":
			apiErr.Message = serverMsg.Message
		case serverMsg.ErrMsg != "":
			apiErr.Message = serverMsg.ErrMsg
		}
	}
	if apiErr.Message == "" {
		apiErr.Err = fmt.Errorf("API request failed with status %d", statusCode)
	}

	logger.CtxWarn(ctx, log_messages.ErrorAPIRequestFailed,
		slog.String("path", path),
		slog.Int("status", statusCode),
		slog.String("message", apiErr.Message),
	)
	return apiErr
}

// buildQuery appends non-empty params to a path.
func buildQuery(path string, params map[string]string) string {
	q := url.Values{}
	for key, value := range params {
		if value != "" {
			q.Set(key, value)
		}
	}
	if encoded := q.Encode(); encoded != "" {
		return path + "?" + encoded
	}
	return path
}
