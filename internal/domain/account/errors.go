package account

import "errors"

var (
	ErrDirectoryUnavailable = errors.New("account directory unavailable")
	ErrAccountNotFound      = errors.New("account not found")
)
