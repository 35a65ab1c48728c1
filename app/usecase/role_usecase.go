package usecase

import (
	"context"
	"log/slog"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// RoleUsecase implements role grant business logic.
type RoleUsecase struct {
	roleRepo port.RoleRepository
	logger   *slog.Logger
}

// NewRoleUsecase creates a role usecase.
func NewRoleUsecase(roleRepo port.RoleRepository, logger *slog.Logger) *RoleUsecase {
	return &RoleUsecase{
		roleRepo: roleRepo,
		logger:   logger.With("component", "role_usecase"),
	}
}

// Grant adds a role for an identity under an account. The store
// rejects wildcard-account grants to non-admin identities and treats
// a re-grant of an existing tuple as a no-op.
func (uc *RoleUsecase) Grant(ctx context.Context, identityID, accountID string, roleID uint) error {
	err := uc.roleRepo.AddGrant(ctx, &domain.RoleGrant{
		IdentityID: identityID,
		AccountID:  accountID,
		RoleID:     roleID,
	})
	if err != nil {
		return err
	}

	uc.logger.Info("role granted", "identity_id", identityID, "account_id", accountID, "role_id", roleID)
	return nil
}

// ResolveForAccount returns the role names an identity holds for the
// account, merged with wildcard-account roles when the identity is
// an admin.
func (uc *RoleUsecase) ResolveForAccount(ctx context.Context, identityID, accountID string) ([]string, error) {
	return uc.roleRepo.RolesForAccount(ctx, identityID, accountID)
}

// ResolveAll returns every grant an identity holds, grouped by
// account.
func (uc *RoleUsecase) ResolveAll(ctx context.Context, identityID string) ([]domain.AccountRoles, error) {
	return uc.roleRepo.GrantsForIdentity(ctx, identityID)
}
