package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// IdentityRepository implements port.IdentityRepository for
// PostgreSQL. Every multi-step mutation runs inside one transaction
// so concurrent requests never observe a half-applied state.
type IdentityRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewIdentityRepository creates a new PostgreSQL identity repository
func NewIdentityRepository(db DatabaseIface, logger *slog.Logger) port.IdentityRepository {
	return &IdentityRepository{
		db:     db,
		logger: logger.With("component", "identity_repository"),
	}
}

// CreateIdentity inserts a new identity row. A duplicate username
// maps to domain.ErrAlreadyExists.
func (r *IdentityRepository) CreateIdentity(ctx context.Context, identity *domain.Identity, passwordHash string) error {
	query := `
		INSERT INTO identity (identity_id, username, password_hash, inserted, updated)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.Username,
		passwordHash,
		identity.Inserted,
		identity.Updated,
	)
	if err != nil {
		r.logger.Error("failed to create identity", "username", identity.Username, "error", err)
		return fmt.Errorf("failed to create identity: %w", mapError(err))
	}

	r.logger.Info("identity created", "identity_id", identity.ID)
	return nil
}

// DeleteIdentity removes an identity row. Sessions and role grants go
// with it via foreign keys. Only the signup compensation step calls
// this.
func (r *IdentityRepository) DeleteIdentity(ctx context.Context, identityID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM identity WHERE identity_id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.logger.Info("identity deleted", "identity_id", identityID)
	return nil
}

// FetchCredentials loads the authentication snapshot for a username
// and, in the same transaction, increments the attempt counter,
// touches the attempt timestamp and drops an expired temp password.
// The snapshot keeps the pre-increment counter values so the lockout
// predicate sees the state this attempt found.
func (r *IdentityRepository) FetchCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT identity_id, username, admin, password_hash,
		       temp_password_hash, temp_password_expire,
		       totp_secret, totp_enabled,
		       auth_attempt_count, last_auth_attempt, locked
		FROM identity
		WHERE username = $1
		FOR UPDATE`

	creds := &domain.Credentials{}
	var tempHash, totpSecret *string
	err = tx.QueryRow(ctx, query, username).Scan(
		&creds.IdentityID,
		&creds.Username,
		&creds.Admin,
		&creds.PasswordHash,
		&tempHash,
		&creds.TempPasswordExp,
		&totpSecret,
		&creds.TOTPEnabled,
		&creds.AttemptCount,
		&creds.LastAttempt,
		&creds.Locked,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials: %w", mapError(err))
	}
	if tempHash != nil {
		creds.TempPasswordHash = *tempHash
	}
	if totpSecret != nil {
		creds.TOTPSecret = *totpSecret
	}

	// Every attempt counts, whatever its outcome.
	_, err = tx.Exec(ctx, `
		UPDATE identity
		SET auth_attempt_count = auth_attempt_count + 1,
		    last_auth_attempt = now()
		WHERE identity_id = $1`, creds.IdentityID)
	if err != nil {
		return nil, fmt.Errorf("failed to record auth attempt: %w", mapError(err))
	}

	now := time.Now()
	if creds.TempPasswordHash != "" && creds.TempPasswordExp != nil && now.After(*creds.TempPasswordExp) {
		_, err = tx.Exec(ctx, `
			UPDATE identity
			SET temp_password_hash = NULL, temp_password_expire = NULL
			WHERE identity_id = $1`, creds.IdentityID)
		if err != nil {
			return nil, fmt.Errorf("failed to clear expired temp password: %w", mapError(err))
		}
		creds.TempPasswordHash = ""
		creds.TempPasswordExp = nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit credential fetch: %w", mapError(err))
	}

	// An unverified secret must never gate authentication.
	if !creds.TOTPEnabled {
		creds.TOTPSecret = ""
	}

	return creds, nil
}

// UpdatePasswordHash rotates the password and deletes every session
// for the identity in the same transaction, so stolen sessions die
// with credential rotation.
func (r *IdentityRepository) UpdatePasswordHash(ctx context.Context, identityID, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE identity
		SET password_hash = $2, updated = now()
		WHERE identity_id = $1`, identityID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM session WHERE identity_id = $1`, identityID); err != nil {
		return fmt.Errorf("failed to invalidate sessions: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit password update: %w", mapError(err))
	}

	r.logger.Info("password updated, sessions invalidated", "identity_id", identityID)
	return nil
}

// RehashPassword silently upgrades a stored hash to the current cost
// after a successful verification. Sessions are untouched: the
// credential itself did not change.
func (r *IdentityRepository) RehashPassword(ctx context.Context, identityID, passwordHash string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE identity
		SET password_hash = $2, updated = now()
		WHERE identity_id = $1`, identityID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to rehash password: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetAttemptCount zeroes the lockout counter after a successful
// authentication.
func (r *IdentityRepository) ResetAttemptCount(ctx context.Context, identityID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE identity
		SET auth_attempt_count = 0
		WHERE identity_id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("failed to reset attempt count: %w", mapError(err))
	}
	return nil
}

// SetTempPassword stores a one-time secondary credential with a
// ten-minute expiry. Admin identities are excluded by policy.
func (r *IdentityRepository) SetTempPassword(ctx context.Context, identityID, tempPasswordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	var admin bool
	err = tx.QueryRow(ctx, `SELECT admin FROM identity WHERE identity_id = $1 FOR UPDATE`, identityID).Scan(&admin)
	if err != nil {
		return fmt.Errorf("failed to load identity: %w", mapError(err))
	}
	if admin {
		return fmt.Errorf("temp passwords are not allowed for admin identities: %w", domain.ErrForbidden)
	}

	_, err = tx.Exec(ctx, `
		UPDATE identity
		SET temp_password_hash = $2,
		    temp_password_expire = now() + interval '10 minutes'
		WHERE identity_id = $1`, identityID, tempPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to set temp password: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit temp password: %w", mapError(err))
	}

	r.logger.Info("temp password issued", "identity_id", identityID)
	return nil
}

// ClearTempPassword drops the temp password for a username. Used for
// one-time consumption after a successful temp login.
func (r *IdentityRepository) ClearTempPassword(ctx context.Context, username string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE identity
		SET temp_password_hash = NULL, temp_password_expire = NULL
		WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to clear temp password: %w", mapError(err))
	}
	return nil
}

// SetTOTPSecret stores a new TOTP secret. Enforcement is switched off
// until the secret is verified via SetTOTPEnabled.
func (r *IdentityRepository) SetTOTPSecret(ctx context.Context, identityID, secret string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE identity
		SET totp_secret = $2, totp_enabled = FALSE
		WHERE identity_id = $1`, identityID, secret)
	if err != nil {
		return fmt.Errorf("failed to set totp secret: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetTOTPEnabled toggles TOTP enforcement.
func (r *IdentityRepository) SetTOTPEnabled(ctx context.Context, identityID string, enabled bool) error {
	result, err := r.db.Exec(ctx, `
		UPDATE identity
		SET totp_enabled = $2
		WHERE identity_id = $1`, identityID, enabled)
	if err != nil {
		return fmt.Errorf("failed to set totp enabled: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TOTPSecret returns the stored secret whether or not enforcement is
// on. Enrollment verification needs the secret before it is enabled.
func (r *IdentityRepository) TOTPSecret(ctx context.Context, identityID string) (string, error) {
	var secret *string
	err := r.db.QueryRow(ctx, `SELECT totp_secret FROM identity WHERE identity_id = $1`, identityID).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("failed to load totp secret: %w", mapError(err))
	}
	if secret == nil {
		return "", domain.ErrNotFound
	}
	return *secret, nil
}

// RequestReset stores a reset token with a one-hour expiry and
// returns the contact email. Admin identities are excluded from
// self-service reset.
func (r *IdentityRepository) RequestReset(ctx context.Context, username, resetToken string) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	var admin bool
	var email *string
	err = tx.QueryRow(ctx, `SELECT admin, email FROM identity WHERE username = $1 FOR UPDATE`, username).Scan(&admin, &email)
	if err != nil {
		return "", fmt.Errorf("failed to load identity: %w", mapError(err))
	}
	if admin {
		return "", fmt.Errorf("password reset is not allowed for admin identities: %w", domain.ErrForbidden)
	}

	_, err = tx.Exec(ctx, `
		UPDATE identity
		SET reset_token = $2,
		    reset_token_expire = now() + interval '1 hour'
		WHERE username = $1`, username, resetToken)
	if err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit reset request: %w", mapError(err))
	}

	r.logger.Info("reset token issued", "username", username)
	if email == nil {
		return "", nil
	}
	return *email, nil
}

// RedeemReset consumes a reset token. The token and its expiry are
// cleared and committed whatever the validity outcome; ErrExpired is
// reported only after the clearing commit, so even a failed
// redemption burns the token. A valid redemption also rotates the
// password and deletes every session for the identity.
func (r *IdentityRepository) RedeemReset(ctx context.Context, resetToken, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	var identityID string
	var expire *time.Time
	err = tx.QueryRow(ctx, `
		SELECT identity_id, reset_token_expire
		FROM identity
		WHERE reset_token = $1
		FOR UPDATE`, resetToken).Scan(&identityID, &expire)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", mapError(err))
	}

	valid := expire != nil && time.Now().Before(*expire)

	if valid {
		if _, err := tx.Exec(ctx, `
			UPDATE identity
			SET password_hash = $2, updated = now()
			WHERE identity_id = $1`, identityID, passwordHash); err != nil {
			return fmt.Errorf("failed to update password hash: %w", mapError(err))
		}
		if _, err := tx.Exec(ctx, `DELETE FROM session WHERE identity_id = $1`, identityID); err != nil {
			return fmt.Errorf("failed to invalidate sessions: %w", mapError(err))
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE identity
		SET reset_token = NULL, reset_token_expire = NULL
		WHERE identity_id = $1`, identityID); err != nil {
		return fmt.Errorf("failed to clear reset token: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset redemption: %w", mapError(err))
	}

	if !valid {
		r.logger.Info("expired reset token cleared", "identity_id", identityID)
		return domain.ErrExpired
	}

	r.logger.Info("reset token redeemed", "identity_id", identityID)
	return nil
}
