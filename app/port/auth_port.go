package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mock_port

import (
	"context"

	"identity-service/app/domain"
)

// AuthUsecase defines the authentication engine interface.
type AuthUsecase interface {
	// Authenticate verifies username/password (+ optional TOTP code)
	// and returns the credential snapshot on success. Failures are
	// domain.ErrAuthFailed or domain.ErrTOTPRequired, nothing more
	// specific.
	Authenticate(ctx context.Context, username, password string, totpCode *string) (*domain.Credentials, error)

	// Login authenticates and opens a session. adminRequested asks
	// for an admin-scoped session and fails for non-admin identities.
	Login(ctx context.Context, username, password string, totpCode *string, adminRequested bool) (*domain.Session, string, error)
}

// SessionUsecase defines session lifecycle business logic.
type SessionUsecase interface {
	Create(ctx context.Context, identityID string, temporary bool) (*domain.Session, error)
	Resolve(ctx context.Context, sessionID string) (*domain.SessionIdentity, error)
	Logout(ctx context.Context, sessionID string) error
	InvalidateAll(ctx context.Context, identityID string) error
}

// SessionRepository defines session data access.
type SessionRepository interface {
	// CreateSession inserts a session row.
	CreateSession(ctx context.Context, session *domain.Session) error

	// ResolveSession joins a session back to its identity. A missing
	// session fails with domain.ErrNotFound; an expired one is
	// deleted on the spot and fails with domain.ErrExpired.
	ResolveSession(ctx context.Context, sessionID string) (*domain.SessionIdentity, error)

	// DeleteSession removes one session.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteSessionsForIdentity removes every session an identity
	// holds. Invoked whenever its password changes so stolen sessions
	// die with credential rotation.
	DeleteSessionsForIdentity(ctx context.Context, identityID string) error
}

// PasswordHasher computes and verifies adaptive-cost password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool

	// Cost extracts the cost parameter a hash was computed with.
	Cost(hash string) (int, error)

	// CurrentCost is the configured cost for new hashes. Stored
	// hashes at another cost are silently upgraded after a
	// successful verification.
	CurrentCost() int

	// DummyHash returns a throwaway hash at the current cost. It is
	// fed to Compare when a username does not exist so that the
	// absent-user path performs the same work as a wrong password.
	DummyHash() string
}

// TOTPVerifier validates a time-based one-time code against a stored
// secret.
type TOTPVerifier interface {
	Verify(secret, code string) bool
}
