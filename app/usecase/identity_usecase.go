package usecase

import (
	"context"
	"log/slog"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// IdentityUsecase implements identity lifecycle business logic:
// signup with downstream account provisioning, password changes,
// temp-password issuance and TOTP enrollment.
type IdentityUsecase struct {
	identityRepo port.IdentityRepository
	roleRepo     port.RoleRepository
	accounts     port.AccountGateway
	sessions     port.SessionUsecase
	auth         port.AuthUsecase
	hasher       port.PasswordHasher
	totp         port.TOTPVerifier
	secrets      TOTPSecretGenerator
	issuer       port.TokenIssuer
	logger       *slog.Logger
}

// TOTPSecretGenerator mints fresh shared secrets for authenticator
// enrollment.
type TOTPSecretGenerator interface {
	GenerateSecret(username string) (string, error)
}

// NewIdentityUsecase creates an identity usecase.
func NewIdentityUsecase(
	identityRepo port.IdentityRepository,
	roleRepo port.RoleRepository,
	accounts port.AccountGateway,
	sessions port.SessionUsecase,
	auth port.AuthUsecase,
	hasher port.PasswordHasher,
	totp port.TOTPVerifier,
	secrets TOTPSecretGenerator,
	issuer port.TokenIssuer,
	logger *slog.Logger,
) *IdentityUsecase {
	return &IdentityUsecase{
		identityRepo: identityRepo,
		roleRepo:     roleRepo,
		accounts:     accounts,
		sessions:     sessions,
		auth:         auth,
		hasher:       hasher,
		totp:         totp,
		secrets:      secrets,
		issuer:       issuer,
		logger:       logger.With("component", "identity_usecase"),
	}
}

// Signup creates an identity and provisions its downstream account.
//
// The account service is called with a short-lived service token
// scoped to account creation only. When provisioning fails the local
// identity row is deleted again so a retry with the same username can
// succeed; the two stores cannot be updated in one transaction, so
// compensation is the consistency mechanism.
func (uc *IdentityUsecase) Signup(ctx context.Context, username, password string) (*domain.Identity, *domain.Session, error) {
	identity, err := domain.NewIdentity(username)
	if err != nil {
		return nil, nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.identityRepo.CreateIdentity(ctx, identity, hash); err != nil {
		return nil, nil, err
	}

	serviceToken, err := uc.issuer.Issue(&domain.TokenClaims{
		IdentityID: identity.ID,
		Roles:      []string{domain.SignupRoleName},
	})
	if err != nil {
		uc.compensateSignup(ctx, identity.ID)
		return nil, nil, err
	}

	accountID, err := uc.accounts.ProvisionAccount(ctx, serviceToken, username)
	if err != nil {
		uc.compensateSignup(ctx, identity.ID)
		return nil, nil, err
	}

	if err := uc.grantDefaultRole(ctx, identity.ID, accountID); err != nil {
		// The identity and its account both exist; a missing default
		// role is recoverable by a later grant, so the signup stands.
		uc.logger.Warn("failed to grant default role", "identity_id", identity.ID, "account_id", accountID, "error", err)
	}

	session, err := uc.sessions.Create(ctx, identity.ID, false)
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("identity created", "identity_id", identity.ID, "account_id", accountID)
	return identity, session, nil
}

// compensateSignup undoes the local identity insert after a
// downstream failure.
func (uc *IdentityUsecase) compensateSignup(ctx context.Context, identityID string) {
	if err := uc.identityRepo.DeleteIdentity(ctx, identityID); err != nil {
		uc.logger.Error("signup compensation failed, identity row orphaned", "identity_id", identityID, "error", err)
	}
}

func (uc *IdentityUsecase) grantDefaultRole(ctx context.Context, identityID, accountID string) error {
	role, err := uc.roleRepo.RoleByName(ctx, domain.DefaultRoleName)
	if err != nil {
		return err
	}

	return uc.roleRepo.AddGrant(ctx, &domain.RoleGrant{
		IdentityID: identityID,
		AccountID:  accountID,
		RoleID:     role.ID,
	})
}

// ChangePassword rotates the password after a full re-authentication
// with the current credentials. Every session for the identity dies
// with the old password.
func (uc *IdentityUsecase) ChangePassword(ctx context.Context, username, oldPassword, newPassword string, totpCode *string) error {
	creds, err := uc.auth.Authenticate(ctx, username, oldPassword, totpCode)
	if err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := uc.identityRepo.UpdatePasswordHash(ctx, creds.IdentityID, hash); err != nil {
		return err
	}

	uc.logger.Info("password changed", "identity_id", creds.IdentityID)
	return nil
}

// IssueTempPassword stores a short-lived one-time secondary
// credential for the identity. Admin identities are excluded by
// policy; the store enforces that.
func (uc *IdentityUsecase) IssueTempPassword(ctx context.Context, identityID, tempPassword string) error {
	hash, err := uc.hasher.Hash(tempPassword)
	if err != nil {
		return err
	}

	if err := uc.identityRepo.SetTempPassword(ctx, identityID, hash); err != nil {
		return err
	}

	uc.logger.Info("temp password issued", "identity_id", identityID)
	return nil
}

// EnrollTOTP generates a fresh shared secret and stores it with
// enforcement off. The secret is returned once, for authenticator
// setup; it never leaves the store again.
func (uc *IdentityUsecase) EnrollTOTP(ctx context.Context, identityID, username string) (string, error) {
	secret, err := uc.secrets.GenerateSecret(username)
	if err != nil {
		return "", err
	}

	if err := uc.identityRepo.SetTOTPSecret(ctx, identityID, secret); err != nil {
		return "", err
	}

	return secret, nil
}

// ActivateTOTP turns enforcement on once a valid code proves the
// authenticator holds the enrolled secret.
func (uc *IdentityUsecase) ActivateTOTP(ctx context.Context, identityID, code string) error {
	secret, err := uc.identityRepo.TOTPSecret(ctx, identityID)
	if err != nil {
		return err
	}

	if !uc.totp.Verify(secret, code) {
		return domain.ErrAuthFailed
	}

	if err := uc.identityRepo.SetTOTPEnabled(ctx, identityID, true); err != nil {
		return err
	}

	uc.logger.Info("totp enforcement enabled", "identity_id", identityID)
	return nil
}
