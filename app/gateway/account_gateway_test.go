package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-service/app/driver/accounts"
	"identity-service/app/utils/logger"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *AccountGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	client := accounts.NewClient(server.URL, testLogger)
	return NewAccountGateway(client, testLogger).(*AccountGateway)
}

func TestAccountGateway_ProvisionAccount(t *testing.T) {
	accountID := strings.Repeat("c", 64)

	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"account_id": accountID})
	})

	got, err := gw.ProvisionAccount(context.Background(), "service-token", "alice")
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestAccountGateway_ProvisionAccount_WrapsClientError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := gw.ProvisionAccount(context.Background(), "service-token", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account provisioning failed")
	assert.Contains(t, err.Error(), "status 502")
}
