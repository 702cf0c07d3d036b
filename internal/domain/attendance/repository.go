package attendance

import "context"

type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	ListUnfinalized(ctx context.Context) ([]Record, error)
	ListByBatch(ctx context.Context, batchID string) ([]Record, error)

	// FinalizeBatch marks every unfinalized record of oldBatchID as
	// finalized and re-stamps it with newBatchID. Returns the number of
	// rows touched. Called only by the payroll finalizer, inside its
	// transaction.
	FinalizeBatch(ctx context.Context, oldBatchID, newBatchID string) (int64, error)
}
