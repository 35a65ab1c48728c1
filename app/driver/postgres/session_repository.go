package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// SessionRepository implements port.SessionRepository for PostgreSQL.
type SessionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db DatabaseIface, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

// CreateSession inserts a session row.
func (r *SessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO session (session_id, identity_id, active, temporary, expires, inserted)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.IdentityID,
		session.Active,
		session.Temporary,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create session", "identity_id", session.IdentityID, "error", err)
		return fmt.Errorf("failed to create session: %w", mapError(err))
	}

	r.logger.Info("session created", "identity_id", session.IdentityID, "temporary", session.Temporary)
	return nil
}

// ResolveSession joins a session back to its owning identity. An
// expired session is deleted on first lookup and reported as
// domain.ErrExpired.
func (r *SessionRepository) ResolveSession(ctx context.Context, sessionID string) (*domain.SessionIdentity, error) {
	query := `
		SELECT i.identity_id, i.username, i.admin, i.totp_secret, s.expires
		FROM session s
		INNER JOIN identity i ON i.identity_id = s.identity_id
		WHERE s.session_id = $1`

	si := &domain.SessionIdentity{}
	var totpSecret *string
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&si.IdentityID,
		&si.Username,
		&si.Admin,
		&totpSecret,
		&si.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", mapError(err))
	}
	if totpSecret != nil {
		si.TOTPSecret = *totpSecret
	}

	if si.ExpiresAt != nil && time.Now().After(*si.ExpiresAt) {
		// Lazy cleanup: the first lookup past the expiry removes the
		// row. A delete failure still reports the session expired.
		if _, err := r.db.Exec(ctx, `DELETE FROM session WHERE session_id = $1`, sessionID); err != nil {
			r.logger.Warn("failed to delete expired session", "error", err)
		}
		return nil, domain.ErrExpired
	}

	return si, nil
}

// DeleteSession removes one session.
func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM session WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", mapError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.logger.Info("session deleted", "session_id_prefix", sessionID[:8])
	return nil
}

// DeleteSessionsForIdentity removes every session an identity holds.
func (r *SessionRepository) DeleteSessionsForIdentity(ctx context.Context, identityID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM session WHERE identity_id = $1`, identityID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", mapError(err))
	}

	r.logger.Info("sessions invalidated", "identity_id", identityID, "count", result.RowsAffected())
	return nil
}
