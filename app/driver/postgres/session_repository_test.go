package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"identity-service/app/domain"
	"identity-service/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test session repository with mocked database
func createTestSessionRepository(t *testing.T) (*SessionRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewSessionRepository(mockDB, testLogger).(*SessionRepository)

	return repo, mockDB
}

func createTestSession(t *testing.T, temporary bool) *domain.Session {
	t.Helper()

	var expires *time.Time
	if temporary {
		exp := time.Now().Add(time.Hour)
		expires = &exp
	}

	session, err := domain.NewSession(strings.Repeat("a", 64), temporary, expires)
	require.NoError(t, err)

	return session
}

func TestSessionRepository_CreateSession(t *testing.T) {
	tests := []struct {
		name      string
		temporary bool
		setupDB   func(pgxmock.PgxPoolIface, *domain.Session)
		wantErr   bool
	}{
		{
			name: "permanent session",
			setupDB: func(mockDB pgxmock.PgxPoolIface, session *domain.Session) {
				mockDB.ExpectExec("INSERT INTO session").
					WithArgs(
						session.ID,
						session.IdentityID,
						session.Active,
						session.Temporary,
						session.ExpiresAt,
						session.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:      "temporary session with expiry",
			temporary: true,
			setupDB: func(mockDB pgxmock.PgxPoolIface, session *domain.Session) {
				mockDB.ExpectExec("INSERT INTO session").
					WithArgs(
						session.ID,
						session.IdentityID,
						session.Active,
						session.Temporary,
						session.ExpiresAt,
						session.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface, session *domain.Session) {
				mockDB.ExpectExec("INSERT INTO session").
					WithArgs(
						session.ID,
						session.IdentityID,
						session.Active,
						session.Temporary,
						session.ExpiresAt,
						session.CreatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestSessionRepository(t)
			defer mockDB.Close()

			session := createTestSession(t, tt.temporary)
			tt.setupDB(mockDB, session)

			err := repo.CreateSession(context.Background(), session)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create session")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

var sessionIdentityColumns = []string{"identity_id", "username", "admin", "totp_secret", "expires"}

func TestSessionRepository_ResolveSession(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	sessionID := strings.Repeat("b", 64)
	identityID := strings.Repeat("a", 64)

	mockDB.ExpectQuery("SELECT i.identity_id, i.username, i.admin").
		WithArgs(sessionID).
		WillReturnRows(pgxmock.NewRows(sessionIdentityColumns).
			AddRow(identityID, "alice", false, nil, nil))

	si, err := repo.ResolveSession(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, identityID, si.IdentityID)
	assert.Equal(t, "alice", si.Username)
	assert.False(t, si.Admin)
	assert.Nil(t, si.ExpiresAt)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_ResolveSession_ExpiredIsDeleted(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	sessionID := strings.Repeat("b", 64)
	identityID := strings.Repeat("a", 64)
	expired := time.Now().Add(-time.Minute)

	mockDB.ExpectQuery("SELECT i.identity_id, i.username, i.admin").
		WithArgs(sessionID).
		WillReturnRows(pgxmock.NewRows(sessionIdentityColumns).
			AddRow(identityID, "alice", false, nil, &expired))
	mockDB.ExpectExec("DELETE FROM session").
		WithArgs(sessionID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	_, err := repo.ResolveSession(context.Background(), sessionID)
	assert.ErrorIs(t, err, domain.ErrExpired)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_ResolveSession_NotFound(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	sessionID := strings.Repeat("b", 64)

	mockDB.ExpectQuery("SELECT i.identity_id, i.username, i.admin").
		WithArgs(sessionID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.ResolveSession(context.Background(), sessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	sessionID := strings.Repeat("b", 64)

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "successful deletion",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("DELETE FROM session").
					WithArgs(sessionID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "session missing",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("DELETE FROM session").
					WithArgs(sessionID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestSessionRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.DeleteSession(context.Background(), sessionID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_DeleteSessionsForIdentity(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	identityID := strings.Repeat("a", 64)

	// Zero deleted rows is not an error: the identity may simply hold
	// no sessions.
	mockDB.ExpectExec("DELETE FROM session").
		WithArgs(identityID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteSessionsForIdentity(context.Background(), identityID)
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
