package token

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"identity-service/app/domain"
)

// Issuer mints signed authorization tokens. Implements
// port.TokenIssuer.
type Issuer struct {
	cfg    Config
	logger *slog.Logger
}

// NewIssuer creates a token issuer.
func NewIssuer(cfg Config, logger *slog.Logger) *Issuer {
	return &Issuer{
		cfg:    cfg,
		logger: logger.With("component", "token_issuer"),
	}
}

// Issue signs a token carrying the given domain claims. The
// not-before bound is backdated by the configured clock skew so a
// fresh token is accepted by peers whose clocks run slightly behind.
func (i *Issuer) Issue(claims *domain.TokenClaims) (string, error) {
	method := jwt.GetSigningMethod(i.cfg.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm: %s", i.cfg.Algorithm)
	}

	key, err := loadPrivateKey(i.cfg.KeyFile)
	if err != nil {
		return "", err
	}

	now := time.Now()
	wire := &serviceClaims{
		IdentityID: claims.IdentityID,
		Admin:      claims.Admin,
		AccountID:  claims.AccountID,
		ProviderID: claims.ProviderID,
		Roles:      claims.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-i.cfg.ClockSkew)),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(method, wire).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	i.logger.Debug("token issued", "identity_id", claims.IdentityID, "roles", claims.Roles)
	return signed, nil
}
