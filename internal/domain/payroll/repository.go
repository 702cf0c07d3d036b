package payroll

import "context"

// HistoryRepository is append-only: rows are bulk-inserted by the
// finalizer and only ever read afterwards.
type HistoryRepository interface {
	CreateBulk(ctx context.Context, records []History) error
	ExistsForBatch(ctx context.Context, batchID string) (bool, error)
	ListAll(ctx context.Context) ([]History, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]History, error)
	GetByBatchAndEmployee(ctx context.Context, batchID, employeeID string) (History, error)
}
