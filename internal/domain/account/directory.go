package account

import "context"

// Directory is the read-only client for the authoritative employee
// roster. Backed by the HR gateway in production, faked in tests.
type Directory interface {
	ListAccounts(ctx context.Context) ([]Account, error)
}
