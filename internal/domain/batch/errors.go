package batch

import "errors"

var (
	ErrNoActiveBatch = errors.New("no active batch")
)
