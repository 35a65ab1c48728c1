package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mock_port

import (
	"context"

	"identity-service/app/domain"
)

// IdentityUsecase defines identity lifecycle business logic.
type IdentityUsecase interface {
	// Signup creates an identity, provisions its downstream account,
	// grants the default role and opens a session.
	Signup(ctx context.Context, username, password string) (*domain.Identity, *domain.Session, error)

	// ChangePassword rotates the password after verifying the current
	// credentials, invalidating every session for the identity.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string, totpCode *string) error

	// IssueTempPassword stores a short-lived one-time secondary
	// credential. Admin identities are excluded by policy.
	IssueTempPassword(ctx context.Context, identityID, tempPassword string) error

	// EnrollTOTP generates and stores a new TOTP secret with
	// enforcement disabled, returning the secret for authenticator
	// setup.
	EnrollTOTP(ctx context.Context, identityID, username string) (string, error)

	// ActivateTOTP flips enforcement on once the supplied code proves
	// the authenticator app holds the stored secret.
	ActivateTOTP(ctx context.Context, identityID, code string) error
}

// IdentityRepository defines identity data access. Implementations
// run every multi-step mutation inside one transaction.
type IdentityRepository interface {
	// CreateIdentity inserts a new identity row. A duplicate username
	// fails with domain.ErrAlreadyExists.
	CreateIdentity(ctx context.Context, identity *domain.Identity, passwordHash string) error

	// DeleteIdentity removes an identity. Only the signup saga's
	// compensation step may call this.
	DeleteIdentity(ctx context.Context, identityID string) error

	// FetchCredentials returns the authentication snapshot for a
	// username. As a side effect of the same transaction it
	// increments auth_attempt_count, touches last_auth_attempt and
	// clears an expired temp password. The returned counters are the
	// pre-increment values.
	FetchCredentials(ctx context.Context, username string) (*domain.Credentials, error)

	// UpdatePasswordHash replaces the password hash and deletes every
	// session for the identity in the same transaction.
	UpdatePasswordHash(ctx context.Context, identityID, passwordHash string) error

	// RehashPassword replaces only the stored hash, leaving sessions
	// alone. Used for silent cost upgrades of a verified password.
	RehashPassword(ctx context.Context, identityID, passwordHash string) error

	// ResetAttemptCount zeroes the lockout counter.
	ResetAttemptCount(ctx context.Context, identityID string) error

	// SetTempPassword stores a temp-password hash with its expiry.
	// Fails with domain.ErrForbidden for admin identities.
	SetTempPassword(ctx context.Context, identityID, tempPasswordHash string) error

	// ClearTempPassword removes the temp password for a username.
	ClearTempPassword(ctx context.Context, username string) error

	// SetTOTPSecret stores a TOTP secret and forces enforcement off
	// until the secret is verified.
	SetTOTPSecret(ctx context.Context, identityID, secret string) error

	// SetTOTPEnabled toggles TOTP enforcement.
	SetTOTPEnabled(ctx context.Context, identityID string, enabled bool) error

	// TOTPSecret returns the stored secret, enabled or not.
	TOTPSecret(ctx context.Context, identityID string) (string, error)

	// RequestReset stores a reset token with its expiry and returns
	// the identity's contact email for out-of-band delivery. Fails
	// with domain.ErrForbidden for admin identities.
	RequestReset(ctx context.Context, username, resetToken string) (string, error)

	// RedeemReset consumes a reset token. The token and its expiry
	// are always cleared and committed, even when the token turned
	// out to be expired; only then is domain.ErrExpired reported. A
	// valid redemption updates the password hash and deletes every
	// session for the identity in the same transaction.
	RedeemReset(ctx context.Context, resetToken, passwordHash string) error
}
