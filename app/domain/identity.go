package domain

import (
	"fmt"
	"time"
)

// Identity represents a human account record.
type Identity struct {
	ID          string     `json:"identity_id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	Admin       bool       `json:"admin"`
	TOTPEnabled bool       `json:"totp_enabled"`
	Inserted    time.Time  `json:"inserted"`
	Updated     time.Time  `json:"updated"`
	LastAttempt *time.Time `json:"-"`
}

// NewIdentity creates a new identity record with a fresh id.
func NewIdentity(username string) (*Identity, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds 50 characters")
	}

	id, err := NewID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Identity{
		ID:       id,
		Username: username,
		Inserted: now,
		Updated:  now,
	}, nil
}

// Credentials is the snapshot of an identity used during one
// authentication attempt. It is read in the same transaction that
// increments the attempt counter; the counter and timestamp here are
// the pre-increment values, so the lockout window is computed from
// the state the attempt found, not the state it caused.
type Credentials struct {
	IdentityID       string
	Username         string
	Admin            bool
	PasswordHash     string
	TempPasswordHash string
	TempPasswordExp  *time.Time
	TOTPSecret       string
	TOTPEnabled      bool
	AttemptCount     uint
	LastAttempt      *time.Time
	Locked           bool

	// TempSession is set by the authentication engine when the
	// temp-password fallback carried the attempt. Sessions issued
	// from it must be marked temporary.
	TempSession bool
}

// lockoutDelayPerAttempt is how much the backoff window widens with
// each failed attempt.
const lockoutDelayPerAttempt = 2 * time.Second

// LockedOut reports whether the identity is rate-limited at now.
// The window is attempt_count * 2 seconds past the last attempt,
// recomputed fresh on every lookup; there is no timer process. The
// manually-set locked flag always wins.
func (c *Credentials) LockedOut(now time.Time) bool {
	if c.Locked {
		return true
	}
	if c.LastAttempt == nil {
		return false
	}

	delay := time.Duration(c.AttemptCount) * lockoutDelayPerAttempt
	return now.Before(c.LastAttempt.Add(delay))
}

// HasTempPassword reports whether a temp password is present and
// still valid at now. Expired temp passwords are cleared by the
// credential fetch itself, but the predicate re-checks the expiry so
// the decision never depends on a second store round trip.
func (c *Credentials) HasTempPassword(now time.Time) bool {
	if c.TempPasswordHash == "" {
		return false
	}
	return c.TempPasswordExp == nil || now.Before(*c.TempPasswordExp)
}
