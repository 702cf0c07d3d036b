package batch

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// GetOrCreateActive returns the active non-expired batch, creating
	// one with candidateID when none exists. Implemented as a single
	// conditional upsert keyed on the active marker, so concurrent
	// callers converge on one batch.
	GetOrCreateActive(ctx context.Context, candidateID string, expiresAt time.Time) (Batch, error)

	// Rotate retires the active batch and installs newBatchID as the
	// active one, recording the finalized total. Called only by the
	// payroll finalizer, inside its transaction.
	Rotate(ctx context.Context, newBatchID string, expiresAt time.Time, totalPayroll decimal.Decimal) (Batch, error)
}
