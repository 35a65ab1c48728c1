package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"identity-service/app/driver/accounts"
	"identity-service/app/port"
)

// AccountGateway adapts the accounts service client to
// port.AccountGateway.
type AccountGateway struct {
	client *accounts.Client
	logger *slog.Logger
}

// NewAccountGateway creates an account gateway.
func NewAccountGateway(client *accounts.Client, logger *slog.Logger) port.AccountGateway {
	return &AccountGateway{
		client: client,
		logger: logger.With("component", "account_gateway"),
	}
}

// ProvisionAccount creates the downstream account for a new identity.
// A failure here aborts the signup; the caller compensates by
// deleting the identity.
func (g *AccountGateway) ProvisionAccount(ctx context.Context, serviceToken, username string) (string, error) {
	accountID, err := g.client.CreateAccount(ctx, serviceToken, username)
	if err != nil {
		g.logger.Error("account provisioning failed", "username", username, "error", err)
		return "", fmt.Errorf("account provisioning failed: %w", err)
	}
	return accountID, nil
}
