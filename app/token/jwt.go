package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"identity-service/app/domain"
)

// Config holds token signing and verification configuration. KeyFile
// is the path prefix of a key pair on disk: "<KeyFile>.private" and
// "<KeyFile>.public" in PEM format.
type Config struct {
	KeyFile   string
	Algorithm string
	Issuer    string
	Audience  string
	TTL       time.Duration
	ClockSkew time.Duration
}

// serviceClaims is the wire shape of an authorization token: the
// registered time-bound fields plus the domain claims.
type serviceClaims struct {
	IdentityID string   `json:"idt"`
	Admin      bool     `json:"adm"`
	AccountID  string   `json:"acc"`
	ProviderID string   `json:"pvd"`
	Roles      []string `json:"rol"`
	jwt.RegisteredClaims
}

func (c *serviceClaims) domain() *domain.TokenClaims {
	return &domain.TokenClaims{
		IdentityID: c.IdentityID,
		Admin:      c.Admin,
		AccountID:  c.AccountID,
		ProviderID: c.ProviderID,
		Roles:      c.Roles,
	}
}

// ParseBearer extracts the token from an "Authorization: Bearer
// <token>" header value. A missing or malformed header fails with
// domain.ErrUnauthorized.
func ParseBearer(header string) (string, error) {
	scheme, encoded, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || encoded == "" {
		return "", domain.ErrUnauthorized
	}
	return encoded, nil
}
