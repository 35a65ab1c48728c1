package domain

// TokenClaims is the verified claim set of an authorization token.
// Tokens are stateless: they are never persisted, only checked by
// signature and claim content.
type TokenClaims struct {
	IdentityID string   `json:"idt"`
	Admin      bool     `json:"adm"`
	AccountID  string   `json:"acc"`
	ProviderID string   `json:"pvd"`
	Roles      []string `json:"rol"`
}

// HasAnyRole reports whether the claim's role set intersects
// required. One common role is enough; this is an intersection test,
// not a subset test.
func (c *TokenClaims) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return false
	}

	held := make(map[string]struct{}, len(c.Roles))
	for _, r := range c.Roles {
		held[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := held[r]; ok {
			return true
		}
	}
	return false
}

// RequireAnyRole is the authorization gate: it fails with
// ErrUnauthorized unless the token holds at least one required role.
func (c *TokenClaims) RequireAnyRole(required ...string) error {
	if !c.HasAnyRole(required...) {
		return ErrUnauthorized
	}
	return nil
}
