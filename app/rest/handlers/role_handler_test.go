package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"identity-service/app/domain"
	mock_port "identity-service/app/mocks"
	custommw "identity-service/app/rest/middleware"
	"identity-service/app/utils/logger"
)

func newRoleHandlerForTest(t *testing.T) (*RoleHandler, *mock_port.MockRoleUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRoles := mock_port.NewMockRoleUsecase(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewRoleHandler(mockRoles, testLogger), mockRoles
}

func TestRoleHandler_GrantRole(t *testing.T) {
	identityID := strings.Repeat("a", 64)
	accountID := strings.Repeat("c", 64)

	tests := []struct {
		name           string
		identityID     string
		body           string
		setupMocks     func(roles *mock_port.MockRoleUsecase)
		expectedStatus int
	}{
		{
			name:       "granted",
			identityID: identityID,
			body:       `{"account_id": "` + accountID + `", "role_id": 2}`,
			setupMocks: func(roles *mock_port.MockRoleUsecase) {
				roles.EXPECT().
					Grant(gomock.Any(), identityID, accountID, uint(2)).
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:       "wildcard grant to non-admin",
			identityID: identityID,
			body:       `{"account_id": "` + domain.WildcardAccountID + `", "role_id": 2}`,
			setupMocks: func(roles *mock_port.MockRoleUsecase) {
				roles.EXPECT().
					Grant(gomock.Any(), identityID, domain.WildcardAccountID, uint(2)).
					Return(domain.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "unknown identity or role",
			identityID: identityID,
			body:       `{"account_id": "` + accountID + `", "role_id": 99}`,
			setupMocks: func(roles *mock_port.MockRoleUsecase) {
				roles.EXPECT().
					Grant(gomock.Any(), identityID, accountID, uint(99)).
					Return(domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed account id",
			identityID:     identityID,
			body:           `{"account_id": "nope", "role_id": 2}`,
			setupMocks:     func(*mock_port.MockRoleUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed identity id",
			identityID:     "nope",
			body:           `{"account_id": "` + accountID + `", "role_id": 2}`,
			setupMocks:     func(*mock_port.MockRoleUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRoles := newRoleHandlerForTest(t)
			tt.setupMocks(mockRoles)

			e := newTestEcho(t)
			c, rec := newJSONContext(t, e, http.MethodPost, "/v1/identities/"+tt.identityID+"/roles", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.identityID)

			require.NoError(t, handler.GrantRole(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleHandler_ListRoles(t *testing.T) {
	identityID := strings.Repeat("a", 64)
	otherID := strings.Repeat("f", 64)

	grants := []domain.AccountRoles{
		{AccountID: strings.Repeat("1", 64), Roles: []string{"user"}},
	}

	tests := []struct {
		name           string
		claims         *domain.TokenClaims
		setupMocks     func(roles *mock_port.MockRoleUsecase)
		expectedStatus int
		wantHTTPError  bool
	}{
		{
			name:   "own identity",
			claims: &domain.TokenClaims{IdentityID: identityID},
			setupMocks: func(roles *mock_port.MockRoleUsecase) {
				roles.EXPECT().ResolveAll(gomock.Any(), identityID).Return(grants, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "admin inspecting another identity",
			claims: &domain.TokenClaims{IdentityID: otherID, Admin: true},
			setupMocks: func(roles *mock_port.MockRoleUsecase) {
				roles.EXPECT().ResolveAll(gomock.Any(), identityID).Return(grants, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin inspecting another identity",
			claims:         &domain.TokenClaims{IdentityID: otherID},
			setupMocks:     func(*mock_port.MockRoleUsecase) {},
			expectedStatus: http.StatusUnauthorized,
			wantHTTPError:  true,
		},
		{
			name:           "no claims",
			claims:         nil,
			setupMocks:     func(*mock_port.MockRoleUsecase) {},
			expectedStatus: http.StatusUnauthorized,
			wantHTTPError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRoles := newRoleHandlerForTest(t)
			tt.setupMocks(mockRoles)

			e := newTestEcho(t)
			c, rec := newJSONContext(t, e, http.MethodGet, "/v1/identities/"+identityID+"/roles", "")
			c.SetParamNames("id")
			c.SetParamValues(identityID)
			if tt.claims != nil {
				c.Set(custommw.ContextKeyClaims, tt.claims)
			}

			err := handler.ListRoles(c)

			if tt.wantHTTPError {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp listRolesResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, identityID, resp.IdentityID)
			assert.Equal(t, grants, resp.Roles)
		})
	}
}
