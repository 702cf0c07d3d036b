package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/config"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret", "1h", "5m")
}

func TestAccountsClient_ListAccounts(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/admin/get-accounts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id":"emp-1","firstName":"Ana","lastName":"Cruz","position":"Clerk","role":"Employee","email":"ana@example.com"},
			{"_id":"emp-2","firstName":"Ben","lastName":"","position":"Manager","role":"Admin"}
		]`))
	}))
	defer server.Close()

	client := NewAccountsClient(config.GatewayConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, newTestJWTService())

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "emp-1", accounts[0].ID)
	assert.Equal(t, "Ana Cruz", accounts[0].FullName())
	assert.Equal(t, "Clerk", accounts[0].Position)
	assert.Equal(t, "Ben", accounts[1].FullName())
	assert.True(t, strings.HasPrefix(gotAuth, "Bearer "))
}

func TestAccountsClient_ListAccounts_GatewayDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewAccountsClient(config.GatewayConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, newTestJWTService())

	_, err := client.ListAccounts(context.Background())
	assert.ErrorIs(t, err, account.ErrDirectoryUnavailable)
}
