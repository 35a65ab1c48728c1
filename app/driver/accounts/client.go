package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is the HTTP client for the downstream accounts service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an accounts service client.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With("component", "accounts_client"),
	}
}

type createAccountRequest struct {
	Name string `json:"name"`
}

type createAccountResponse struct {
	AccountID string `json:"account_id"`
}

// CreateAccount provisions an account named after the new identity.
// The call is authenticated service-to-service with the given signed
// token and carries a correlation id for tracing across services.
func (c *Client) CreateAccount(ctx context.Context, serviceToken, name string) (string, error) {
	body, err := json.Marshal(createAccountRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to encode account request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build account request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+serviceToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Info("provisioning account", "name", name, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("accounts service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("accounts service returned status %d", resp.StatusCode)
	}

	var decoded createAccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode account response: %w", err)
	}
	if decoded.AccountID == "" {
		return "", fmt.Errorf("accounts service returned no account id")
	}

	c.logger.Info("account provisioned", "account_id", decoded.AccountID, "request_id", requestID)
	return decoded.AccountID, nil
}

// HealthCheck probes the accounts service.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("accounts service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("accounts service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
