package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"identity-service/app/domain"
	mock_port "identity-service/app/mocks"
	"identity-service/app/utils/logger"
)

func newResetUsecaseForTest(t *testing.T) (*ResetUsecase, *mock_port.MockIdentityRepository, *mock_port.MockPasswordHasher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	identityRepo := mock_port.NewMockIdentityRepository(ctrl)
	hasher := mock_port.NewMockPasswordHasher(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewResetUsecase(identityRepo, hasher, testLogger), identityRepo, hasher
}

func TestResetUsecase_RequestReset(t *testing.T) {
	uc, identityRepo, _ := newResetUsecaseForTest(t)

	identityRepo.EXPECT().
		RequestReset(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, token string) (string, error) {
			// The token doubles as a lookup key, so it must carry the
			// same entropy as any other id.
			assert.True(t, domain.ValidID(token))
			return "alice@example.com", nil
		})

	email, err := uc.RequestReset(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestResetUsecase_RequestReset_UnknownUsername(t *testing.T) {
	uc, identityRepo, _ := newResetUsecaseForTest(t)

	identityRepo.EXPECT().
		RequestReset(gomock.Any(), "ghost", gomock.Any()).
		Return("", domain.ErrNotFound)

	_, err := uc.RequestReset(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResetUsecase_Redeem(t *testing.T) {
	token := "3f1a" // opaque to the usecase, validated by the handler

	tests := []struct {
		name       string
		setupMocks func(identityRepo *mock_port.MockIdentityRepository, hasher *mock_port.MockPasswordHasher)
		wantErr    error
	}{
		{
			name: "success",
			setupMocks: func(identityRepo *mock_port.MockIdentityRepository, hasher *mock_port.MockPasswordHasher) {
				hasher.EXPECT().Hash("new-pass").Return("$2b$12$new", nil)
				identityRepo.EXPECT().
					RedeemReset(gomock.Any(), token, "$2b$12$new").
					Return(nil)
			},
		},
		{
			name: "expired token",
			setupMocks: func(identityRepo *mock_port.MockIdentityRepository, hasher *mock_port.MockPasswordHasher) {
				hasher.EXPECT().Hash("new-pass").Return("$2b$12$new", nil)
				identityRepo.EXPECT().
					RedeemReset(gomock.Any(), token, "$2b$12$new").
					Return(domain.ErrExpired)
			},
			wantErr: domain.ErrExpired,
		},
		{
			name: "unknown token",
			setupMocks: func(identityRepo *mock_port.MockIdentityRepository, hasher *mock_port.MockPasswordHasher) {
				hasher.EXPECT().Hash("new-pass").Return("$2b$12$new", nil)
				identityRepo.EXPECT().
					RedeemReset(gomock.Any(), token, "$2b$12$new").
					Return(domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, identityRepo, hasher := newResetUsecaseForTest(t)
			tt.setupMocks(identityRepo, hasher)

			err := uc.Redeem(context.Background(), token, "new-pass")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
