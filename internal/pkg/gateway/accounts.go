// Package gateway implements the clients for the sibling HR services
// reachable through the API gateway.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JL1365/hr3-backoffice-go/internal/config"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/jwt"
)

// AccountsClient fetches the employee roster from the admin accounts
// endpoint using a short-lived service token.
type AccountsClient struct {
	baseURL    string
	httpClient *http.Client
	jwtService jwt.Service
}

func NewAccountsClient(cfg config.GatewayConfig, jwtService jwt.Service) *AccountsClient {
	return &AccountsClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		jwtService: jwtService,
	}
}

func (c *AccountsClient) ListAccounts(ctx context.Context) ([]account.Account, error) {
	token, err := c.jwtService.GenerateServiceToken()
	if err != nil {
		return nil, fmt.Errorf("generate service token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/get-accounts", nil)
	if err != nil {
		return nil, fmt.Errorf("build accounts request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", account.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway returned status %d", account.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var accounts []account.Account
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("%w: decode roster: %v", account.ErrDirectoryUnavailable, err)
	}

	return accounts, nil
}

var _ account.Directory = (*AccountsClient)(nil)
