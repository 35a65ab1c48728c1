package postgres

import (
	"context"
	"strings"
	"testing"

	"identity-service/app/domain"
	"identity-service/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test role repository with mocked database
func createTestRoleRepository(t *testing.T) (*RoleRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewRoleRepository(mockDB, testLogger).(*RoleRepository)

	return repo, mockDB
}

func TestRoleRepository_CreateRole(t *testing.T) {
	repo, mockDB := createTestRoleRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("INSERT INTO role").
		WithArgs("editor").
		WillReturnRows(pgxmock.NewRows([]string{"role_id"}).AddRow(uint(4)))

	role, err := repo.CreateRole(context.Background(), "editor")
	require.NoError(t, err)

	assert.Equal(t, uint(4), role.ID)
	assert.Equal(t, "editor", role.Name)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRoleRepository_RoleByName(t *testing.T) {
	tests := []struct {
		name     string
		roleName string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  error
	}{
		{
			name:     "role found",
			roleName: "user",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT role_id, name FROM role").
					WithArgs("user").
					WillReturnRows(pgxmock.NewRows([]string{"role_id", "name"}).AddRow(uint(1), "user"))
			},
		},
		{
			name:     "unknown role",
			roleName: "nonexistent",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT role_id, name FROM role").
					WithArgs("nonexistent").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestRoleRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			role, err := repo.RoleByName(context.Background(), tt.roleName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.roleName, role.Name)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestRoleRepository_AddGrant(t *testing.T) {
	identityID := strings.Repeat("a", 64)
	accountID := strings.Repeat("c", 64)

	tests := []struct {
		name    string
		grant   *domain.RoleGrant
		setupDB func(pgxmock.PgxPoolIface, *domain.RoleGrant)
		wantErr error
	}{
		{
			name:  "regular account grant",
			grant: &domain.RoleGrant{IdentityID: identityID, AccountID: accountID, RoleID: 2},
			setupDB: func(mockDB pgxmock.PgxPoolIface, grant *domain.RoleGrant) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO identity_role").
					WithArgs(grant.IdentityID, grant.AccountID, grant.RoleID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mockDB.ExpectCommit()
			},
		},
		{
			name:  "re-grant of existing tuple is a no-op",
			grant: &domain.RoleGrant{IdentityID: identityID, AccountID: accountID, RoleID: 2},
			setupDB: func(mockDB pgxmock.PgxPoolIface, grant *domain.RoleGrant) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO identity_role").
					WithArgs(grant.IdentityID, grant.AccountID, grant.RoleID).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mockDB.ExpectCommit()
			},
		},
		{
			name:  "wildcard grant to admin",
			grant: &domain.RoleGrant{IdentityID: identityID, AccountID: domain.WildcardAccountID, RoleID: 2},
			setupDB: func(mockDB pgxmock.PgxPoolIface, grant *domain.RoleGrant) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery("SELECT admin FROM identity").
					WithArgs(grant.IdentityID).
					WillReturnRows(pgxmock.NewRows([]string{"admin"}).AddRow(true))
				mockDB.ExpectExec("INSERT INTO identity_role").
					WithArgs(grant.IdentityID, grant.AccountID, grant.RoleID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mockDB.ExpectCommit()
			},
		},
		{
			name:  "wildcard grant to non-admin rejected",
			grant: &domain.RoleGrant{IdentityID: identityID, AccountID: domain.WildcardAccountID, RoleID: 2},
			setupDB: func(mockDB pgxmock.PgxPoolIface, grant *domain.RoleGrant) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery("SELECT admin FROM identity").
					WithArgs(grant.IdentityID).
					WillReturnRows(pgxmock.NewRows([]string{"admin"}).AddRow(false))
				mockDB.ExpectRollback()
			},
			wantErr: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestRoleRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.grant)

			err := repo.AddGrant(context.Background(), tt.grant)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestRoleRepository_RolesForAccount(t *testing.T) {
	repo, mockDB := createTestRoleRepository(t)
	defer mockDB.Close()

	identityID := strings.Repeat("a", 64)
	accountID := strings.Repeat("c", 64)

	mockDB.ExpectQuery("SELECT DISTINCT ro.name").
		WithArgs(identityID, accountID, domain.WildcardAccountID).
		WillReturnRows(pgxmock.NewRows([]string{"name"}).
			AddRow("editor").
			AddRow("user"))

	roles, err := repo.RolesForAccount(context.Background(), identityID, accountID)
	require.NoError(t, err)

	assert.Equal(t, []string{"editor", "user"}, roles)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRoleRepository_RolesForAccount_NoGrants(t *testing.T) {
	repo, mockDB := createTestRoleRepository(t)
	defer mockDB.Close()

	identityID := strings.Repeat("a", 64)
	accountID := strings.Repeat("c", 64)

	mockDB.ExpectQuery("SELECT DISTINCT ro.name").
		WithArgs(identityID, accountID, domain.WildcardAccountID).
		WillReturnRows(pgxmock.NewRows([]string{"name"}))

	roles, err := repo.RolesForAccount(context.Background(), identityID, accountID)
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRoleRepository_GrantsForIdentity_GroupsByAccount(t *testing.T) {
	repo, mockDB := createTestRoleRepository(t)
	defer mockDB.Close()

	identityID := strings.Repeat("a", 64)
	accountA := strings.Repeat("1", 64)
	accountB := strings.Repeat("2", 64)

	// Rows arrive ordered by account; adjacent rows for the same
	// account fold into one group.
	mockDB.ExpectQuery("SELECT ir.account_id, ro.name").
		WithArgs(identityID).
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "name"}).
			AddRow(accountA, "editor").
			AddRow(accountA, "user").
			AddRow(accountB, "user"))

	grants, err := repo.GrantsForIdentity(context.Background(), identityID)
	require.NoError(t, err)

	assert.Equal(t, []domain.AccountRoles{
		{AccountID: accountA, Roles: []string{"editor", "user"}},
		{AccountID: accountB, Roles: []string{"user"}},
	}, grants)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
