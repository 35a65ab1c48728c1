package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go -package=mock_port

import (
	"context"

	"identity-service/app/domain"
)

// AccountGateway provisions the downstream account for a new
// identity. It is invoked exactly once per signup with a signed
// service-level token; a failure aborts the signup.
type AccountGateway interface {
	ProvisionAccount(ctx context.Context, serviceToken, username string) (accountID string, err error)
}

// ResetUsecase defines the password-reset flow.
type ResetUsecase interface {
	// RequestReset issues a time-bounded reset token and returns the
	// contact email it should be delivered to.
	RequestReset(ctx context.Context, username string) (email string, err error)

	// Redeem consumes a reset token exactly once and sets the new
	// password. Even an expired token is cleared before ErrExpired is
	// reported.
	Redeem(ctx context.Context, resetToken, newPassword string) error
}

// TokenIssuer mints signed authorization tokens.
type TokenIssuer interface {
	Issue(claims *domain.TokenClaims) (string, error)
}

// TokenVerifier validates signed authorization tokens. It is
// stateless given the public key material.
type TokenVerifier interface {
	// Verify checks signature, issuer, audience and time bounds and
	// returns the domain claims. Every failure is
	// domain.ErrUnauthorized.
	Verify(tokenString string) (*domain.TokenClaims, error)

	// VerifyBearer extracts the token from an
	// "Authorization: Bearer <token>" header value and verifies it.
	VerifyBearer(header string) (*domain.TokenClaims, error)
}
