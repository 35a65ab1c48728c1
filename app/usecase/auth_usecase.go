package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// AuthUsecase implements the authentication engine. It orchestrates
// credential verification, the temp-password fallback, the TOTP
// challenge and the lockout policy against a single identity record.
type AuthUsecase struct {
	identityRepo port.IdentityRepository
	roleRepo     port.RoleRepository
	sessions     port.SessionUsecase
	hasher       port.PasswordHasher
	totp         port.TOTPVerifier
	issuer       port.TokenIssuer
	logger       *slog.Logger
}

// NewAuthUsecase creates the authentication engine.
func NewAuthUsecase(
	identityRepo port.IdentityRepository,
	roleRepo port.RoleRepository,
	sessions port.SessionUsecase,
	hasher port.PasswordHasher,
	totp port.TOTPVerifier,
	issuer port.TokenIssuer,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		identityRepo: identityRepo,
		roleRepo:     roleRepo,
		sessions:     sessions,
		hasher:       hasher,
		totp:         totp,
		issuer:       issuer,
		logger:       logger.With("component", "auth_usecase"),
	}
}

// Authenticate verifies an identity's credentials.
//
// The control flow is shaped so that every rejection path performs
// the same password-hashing work before returning: an absent username
// is verified against a dummy hash at the configured cost, and the
// lockout and wrong-password rejections happen only after hashing.
// Skipping any of that would let a caller distinguish the cases by
// response latency.
func (uc *AuthUsecase) Authenticate(ctx context.Context, username, password string, totpCode *string) (*domain.Credentials, error) {
	creds, err := uc.identityRepo.FetchCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No such username. Burn the same bcrypt work a stored
			// hash would cost before rejecting.
			uc.hasher.Compare(uc.hasher.DummyHash(), password)
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}

	now := time.Now()

	didPass := uc.hasher.Compare(creds.PasswordHash, password)
	consumeTemp := false
	if !didPass && creds.HasTempPassword(now) {
		if uc.hasher.Compare(creds.TempPasswordHash, password) {
			didPass = true
			creds.TempSession = true
			consumeTemp = true
		}
	}

	// Only now, with the hashing work paid, is it safe to reject.
	// A lockout rejection must leave the temp password intact, so
	// consumption waits until the gate has been passed.
	if creds.LockedOut(now) {
		return nil, domain.ErrAuthFailed
	}
	if !didPass {
		return nil, domain.ErrAuthFailed
	}

	if consumeTemp {
		// One-time use. A cleanup failure must not block the login
		// the temp password just carried.
		if err := uc.identityRepo.ClearTempPassword(ctx, username); err != nil {
			uc.logger.Warn("failed to consume temp password", "identity_id", creds.IdentityID, "error", err)
		}
	}

	if creds.TOTPEnabled && creds.TOTPSecret != "" {
		if totpCode == nil {
			return nil, domain.ErrTOTPRequired
		}
		if !uc.totp.Verify(creds.TOTPSecret, *totpCode) {
			return nil, domain.ErrAuthFailed
		}
	}

	// Best-effort bookkeeping. Neither failure may undo a successful
	// authentication.
	if err := uc.identityRepo.ResetAttemptCount(ctx, creds.IdentityID); err != nil {
		uc.logger.Warn("failed to reset attempt count", "identity_id", creds.IdentityID, "error", err)
	}
	uc.maybeUpgradeHash(ctx, creds, password)

	return creds, nil
}

// maybeUpgradeHash re-hashes a verified password when the stored hash
// was computed at a stale cost. Best-effort: failures are logged and
// swallowed.
func (uc *AuthUsecase) maybeUpgradeHash(ctx context.Context, creds *domain.Credentials, password string) {
	if creds.TempSession {
		// The primary password was not verified on this attempt.
		return
	}

	cost, err := uc.hasher.Cost(creds.PasswordHash)
	if err != nil || cost == uc.hasher.CurrentCost() {
		return
	}

	newHash, err := uc.hasher.Hash(password)
	if err != nil {
		uc.logger.Warn("failed to compute upgraded hash", "identity_id", creds.IdentityID, "error", err)
		return
	}

	if err := uc.identityRepo.RehashPassword(ctx, creds.IdentityID, newHash); err != nil {
		uc.logger.Warn("failed to persist upgraded hash", "identity_id", creds.IdentityID, "error", err)
		return
	}

	uc.logger.Info("password hash upgraded", "identity_id", creds.IdentityID, "old_cost", cost, "new_cost", uc.hasher.CurrentCost())
}

// Login authenticates and opens a session, returning the session and
// a signed authorization token carrying the identity's role claims.
// adminRequested asks for an admin-scoped session; a non-admin
// identity asking for one is rejected like any bad credential.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string, totpCode *string, adminRequested bool) (*domain.Session, string, error) {
	creds, err := uc.Authenticate(ctx, username, password, totpCode)
	if err != nil {
		return nil, "", err
	}

	if adminRequested && !creds.Admin {
		return nil, "", domain.ErrAuthFailed
	}

	session, err := uc.sessions.Create(ctx, creds.IdentityID, creds.TempSession)
	if err != nil {
		return nil, "", err
	}

	roles, err := uc.roleNames(ctx, creds.IdentityID)
	if err != nil {
		uc.discardSession(ctx, session)
		return nil, "", err
	}

	signed, err := uc.issuer.Issue(&domain.TokenClaims{
		IdentityID: creds.IdentityID,
		Admin:      creds.Admin,
		Roles:      roles,
	})
	if err != nil {
		uc.discardSession(ctx, session)
		return nil, "", err
	}

	uc.logger.Info("login succeeded", "identity_id", creds.IdentityID, "temporary", creds.TempSession)
	return session, signed, nil
}

// discardSession removes a session opened by a login that then failed
// partway, so the failed request leaves no live credential behind.
func (uc *AuthUsecase) discardSession(ctx context.Context, session *domain.Session) {
	if err := uc.sessions.Logout(ctx, session.ID); err != nil {
		uc.logger.Warn("failed to discard session after login failure", "session_id", session.ID, "error", err)
	}
}

// roleNames returns the distinct role names an identity holds across
// all accounts.
func (uc *AuthUsecase) roleNames(ctx context.Context, identityID string) ([]string, error) {
	grants, err := uc.roleRepo.GrantsForIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, g := range grants {
		for _, name := range g.Roles {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}
