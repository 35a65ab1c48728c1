package port

//go:generate mockgen -source=role_port.go -destination=../mocks/mock_role_port.go -package=mock_port

import (
	"context"

	"identity-service/app/domain"
)

// RoleUsecase defines role grant business logic.
type RoleUsecase interface {
	// Grant adds a role for an identity/account pair. Granting under
	// the wildcard account fails with domain.ErrForbidden unless the
	// identity is an admin. Re-granting an existing tuple is a no-op.
	Grant(ctx context.Context, identityID, accountID string, roleID uint) error

	// ResolveForAccount returns the union of roles for the exact
	// account plus, for admin identities, wildcard-account roles.
	ResolveForAccount(ctx context.Context, identityID, accountID string) ([]string, error)

	// ResolveAll returns every grant an identity holds, grouped by
	// account.
	ResolveAll(ctx context.Context, identityID string) ([]domain.AccountRoles, error)
}

// RoleRepository defines role data access.
type RoleRepository interface {
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
	RoleByName(ctx context.Context, name string) (*domain.Role, error)

	// AddGrant inserts an identity/account/role tuple. Inserting an
	// existing tuple succeeds without effect. Wildcard-account grants
	// to non-admin identities fail with domain.ErrForbidden.
	AddGrant(ctx context.Context, grant *domain.RoleGrant) error

	// RolesForAccount returns role names for the exact account,
	// merged with wildcard grants when the identity is admin.
	RolesForAccount(ctx context.Context, identityID, accountID string) ([]string, error)

	// GrantsForIdentity returns all grants grouped by account.
	GrantsForIdentity(ctx context.Context, identityID string) ([]domain.AccountRoles, error)
}
