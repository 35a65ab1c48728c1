package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// RoleRepository implements port.RoleRepository for PostgreSQL.
type RoleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRoleRepository creates a new PostgreSQL role repository
func NewRoleRepository(db DatabaseIface, logger *slog.Logger) port.RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: logger.With("component", "role_repository"),
	}
}

// CreateRole inserts a named role.
func (r *RoleRepository) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{Name: name}
	err := r.db.QueryRow(ctx, `
		INSERT INTO role (name) VALUES ($1)
		RETURNING role_id`, name).Scan(&role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", mapError(err))
	}

	r.logger.Info("role created", "role_id", role.ID, "name", name)
	return role, nil
}

// RoleByName looks up a role by its unique name.
func (r *RoleRepository) RoleByName(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.db.QueryRow(ctx, `
		SELECT role_id, name FROM role WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load role: %w", mapError(err))
	}
	return role, nil
}

// AddGrant inserts an identity/account/role tuple. A wildcard-account
// grant is allowed only for admin identities. Inserting an existing
// tuple is a no-op, not an error.
func (r *RoleRepository) AddGrant(ctx context.Context, grant *domain.RoleGrant) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	if grant.AccountID == domain.WildcardAccountID {
		var admin bool
		err = tx.QueryRow(ctx, `SELECT admin FROM identity WHERE identity_id = $1`, grant.IdentityID).Scan(&admin)
		if err != nil {
			return fmt.Errorf("failed to load identity: %w", mapError(err))
		}
		if !admin {
			return fmt.Errorf("wildcard-account grants require an admin identity: %w", domain.ErrForbidden)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO identity_role (identity_id, account_id, role_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity_id, account_id, role_id) DO NOTHING`,
		grant.IdentityID, grant.AccountID, grant.RoleID)
	if err != nil {
		return fmt.Errorf("failed to add grant: %w", mapError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit grant: %w", mapError(err))
	}

	r.logger.Info("role granted", "identity_id", grant.IdentityID, "role_id", grant.RoleID)
	return nil
}

// RolesForAccount returns the role names granted for the exact
// account, plus wildcard-account roles when the identity is admin.
func (r *RoleRepository) RolesForAccount(ctx context.Context, identityID, accountID string) ([]string, error) {
	query := `
		SELECT DISTINCT ro.name
		FROM identity_role ir
		INNER JOIN role ro ON ro.role_id = ir.role_id
		INNER JOIN identity i ON i.identity_id = ir.identity_id
		WHERE ir.identity_id = $1
		  AND (ir.account_id = $2 OR (i.admin AND ir.account_id = $3))
		ORDER BY ro.name`

	rows, err := r.db.Query(ctx, query, identityID, accountID, domain.WildcardAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", mapError(err))
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", mapError(err))
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles: %w", mapError(err))
	}

	return roles, nil
}

// GrantsForIdentity returns every grant an identity holds, grouped by
// account.
func (r *RoleRepository) GrantsForIdentity(ctx context.Context, identityID string) ([]domain.AccountRoles, error) {
	query := `
		SELECT ir.account_id, ro.name
		FROM identity_role ir
		INNER JOIN role ro ON ro.role_id = ir.role_id
		WHERE ir.identity_id = $1
		ORDER BY ir.account_id, ro.name`

	rows, err := r.db.Query(ctx, query, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", mapError(err))
	}
	defer rows.Close()

	var grouped []domain.AccountRoles
	for rows.Next() {
		var accountID, name string
		if err := rows.Scan(&accountID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", mapError(err))
		}

		if n := len(grouped); n > 0 && grouped[n-1].AccountID == accountID {
			grouped[n-1].Roles = append(grouped[n-1].Roles, name)
		} else {
			grouped = append(grouped, domain.AccountRoles{AccountID: accountID, Roles: []string{name}})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grants: %w", mapError(err))
	}

	return grouped, nil
}
