package token

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"identity-service/app/domain"
)

// Verifier validates signed authorization tokens. It is stateless
// given the public key material. Implements port.TokenVerifier.
type Verifier struct {
	cfg    Config
	logger *slog.Logger
}

// NewVerifier creates a token verifier.
func NewVerifier(cfg Config, logger *slog.Logger) *Verifier {
	return &Verifier{
		cfg:    cfg,
		logger: logger.With("component", "token_verifier"),
	}
}

// Verify checks signature, issuer, audience and time bounds. Every
// failure mode, including unloadable key material, collapses to
// domain.ErrUnauthorized so callers learn nothing about why a token
// was rejected.
func (v *Verifier) Verify(tokenString string) (*domain.TokenClaims, error) {
	key, err := loadPublicKey(v.cfg.KeyFile)
	if err != nil {
		v.logger.Error("signing key unavailable", "error", err)
		return nil, domain.ErrUnauthorized
	}

	claims := &serviceClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{v.cfg.Algorithm}),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		v.logger.Debug("token rejected", "error", err)
		return nil, domain.ErrUnauthorized
	}

	return claims.domain(), nil
}

// VerifyBearer verifies the token carried in an Authorization header
// value of the form "Bearer <token>".
func (v *Verifier) VerifyBearer(header string) (*domain.TokenClaims, error) {
	encoded, err := ParseBearer(header)
	if err != nil {
		return nil, err
	}
	return v.Verify(encoded)
}
