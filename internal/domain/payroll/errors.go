package payroll

import "errors"

var (
	ErrBatchNotFound         = errors.New("batch not found in net salary projection")
	ErrBatchAlreadyFinalized = errors.New("batch has already been finalized")
	ErrHistoryNotFound       = errors.New("payroll history record not found")
)
