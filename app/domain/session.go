package domain

import (
	"time"
)

// Session represents an authenticated session tied to an identity.
// ExpiresAt of nil means the session is indefinite.
type Session struct {
	ID         string     `json:"session_id"`
	IdentityID string     `json:"identity_id"`
	Active     bool       `json:"active"`
	Temporary  bool       `json:"temporary"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SessionIdentity is the projection returned when a session id is
// resolved back to its owning identity.
type SessionIdentity struct {
	IdentityID string     `json:"identity_id"`
	Username   string     `json:"username"`
	Admin      bool       `json:"admin"`
	TOTPSecret string     `json:"-"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// NewSession creates a session with an unforgeable random id. A
// temporary session (issued against a temp password) always carries
// an expiry; a permanent one is indefinite unless expires is given.
func NewSession(identityID string, temporary bool, expires *time.Time) (*Session, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:         id,
		IdentityID: identityID,
		Active:     true,
		Temporary:  temporary,
		ExpiresAt:  expires,
		CreatedAt:  time.Now(),
	}, nil
}

// IsExpired reports whether the session is past its expiry at now.
// Indefinite sessions never expire.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
