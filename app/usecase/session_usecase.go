package usecase

import (
	"context"
	"log/slog"
	"time"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// SessionUsecase implements session lifecycle business logic.
type SessionUsecase struct {
	sessionRepo    port.SessionRepository
	tempSessionTTL time.Duration
	logger         *slog.Logger
}

// NewSessionUsecase creates a session usecase. tempSessionTTL bounds
// sessions issued against a temp password.
func NewSessionUsecase(sessionRepo port.SessionRepository, tempSessionTTL time.Duration, logger *slog.Logger) *SessionUsecase {
	return &SessionUsecase{
		sessionRepo:    sessionRepo,
		tempSessionTTL: tempSessionTTL,
		logger:         logger.With("component", "session_usecase"),
	}
}

// Create opens a session for an identity. Temporary sessions always
// expire; permanent ones are indefinite.
func (uc *SessionUsecase) Create(ctx context.Context, identityID string, temporary bool) (*domain.Session, error) {
	var expires *time.Time
	if temporary {
		t := time.Now().Add(uc.tempSessionTTL)
		expires = &t
	}

	session, err := domain.NewSession(identityID, temporary, expires)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Resolve looks a session id up and returns the owning identity.
func (uc *SessionUsecase) Resolve(ctx context.Context, sessionID string) (*domain.SessionIdentity, error) {
	return uc.sessionRepo.ResolveSession(ctx, sessionID)
}

// Logout deletes one session.
func (uc *SessionUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.DeleteSession(ctx, sessionID)
}

// InvalidateAll deletes every session an identity holds.
func (uc *SessionUsecase) InvalidateAll(ctx context.Context, identityID string) error {
	return uc.sessionRepo.DeleteSessionsForIdentity(ctx, identityID)
}
