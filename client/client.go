package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/example/walletbridge/internal/types"
)

// SignatureInfo is one entry of the transactions endpoint.
type SignatureInfo = types.SignatureInfo

// HTTPError is returned for any non-2xx answer from the gateway.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error! Status: %d (%s)", e.StatusCode, e.Message)
}

// Client is the HTTP client for the walletbridge gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client. A nil httpClient uses
// http.DefaultClient, so only transport defaults apply.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Balance returns the lamport balance of address.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	var out types.BalanceResponse
	if err := c.get(ctx, "/api/balance/"+url.PathEscape(address), &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// Transactions returns the recent signatures of address, newest first.
func (c *Client) Transactions(ctx context.Context, address string) ([]SignatureInfo, error) {
	out := []SignatureInfo{}
	if err := c.get(ctx, "/api/transactions/"+url.PathEscape(address), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Test calls the liveness probe and returns its message.
func (c *Client) Test(ctx context.Context) (string, error) {
	var out types.MessageResponse
	if err := c.get(ctx, "/test", &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.parseErrorResponse(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	c.logger.Debug("gateway request", "path", path, "status", resp.StatusCode)
	return nil
}

func (c *Client) parseErrorResponse(resp *http.Response) error {
	var body types.MessageResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &HTTPError{StatusCode: resp.StatusCode, Message: body.Message}
}
