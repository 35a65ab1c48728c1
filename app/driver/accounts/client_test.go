package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-service/app/utils/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewClient(server.URL, testLogger), server
}

func TestClient_CreateAccount(t *testing.T) {
	accountID := strings.Repeat("c", 64)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req createAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(createAccountResponse{AccountID: accountID})
	})

	got, err := client.CreateAccount(context.Background(), "service-token", "alice")
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestClient_CreateAccount_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errPart string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			errPart: "status 500",
		},
		{
			name: "rejected token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			errPart: "status 401",
		},
		{
			name: "empty account id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(createAccountResponse{})
			},
			errPart: "no account id",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("not json"))
			},
			errPart: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)

			_, err := client.CreateAccount(context.Background(), "service-token", "alice")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestClient_CreateAccount_Unreachable(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.CreateAccount(context.Background(), "service-token", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestClient_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unhealthy", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			err := client.HealthCheck(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
