package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type batchRepository struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) batch.Repository {
	return &batchRepository{db: db}
}

// GetOrCreateActive relies on a partial unique index on is_active
// (WHERE is_active): the insert is a no-op when an active batch already
// exists, so concurrent callers converge on a single row.
func (r *batchRepository) GetOrCreateActive(ctx context.Context, candidateID string, expiresAt time.Time) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	// Retire an active batch whose window has lapsed before upserting.
	if _, err := q.Exec(ctx, `
		UPDATE batches SET is_active = false
		WHERE is_active = true AND expiration_date < NOW()
	`); err != nil {
		return batch.Batch{}, fmt.Errorf("failed to retire expired batch: %w", err)
	}

	if _, err := q.Exec(ctx, `
		INSERT INTO batches (batch_id, expiration_date, total_payroll_amount, is_active)
		VALUES ($1, $2, 0, true)
		ON CONFLICT (is_active) WHERE is_active DO NOTHING
	`, candidateID, expiresAt); err != nil {
		return batch.Batch{}, fmt.Errorf("failed to upsert active batch: %w", err)
	}

	return r.getActive(ctx)
}

func (r *batchRepository) Rotate(ctx context.Context, newBatchID string, expiresAt time.Time, totalPayroll decimal.Decimal) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM batches WHERE is_active = true`); err != nil {
		return batch.Batch{}, fmt.Errorf("failed to retire active batch: %w", err)
	}

	var b batch.Batch
	err := q.QueryRow(ctx, `
		INSERT INTO batches (batch_id, expiration_date, total_payroll_amount, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, batch_id, expiration_date, total_payroll_amount, is_active, created_at
	`, newBatchID, expiresAt, totalPayroll).Scan(
		&b.ID, &b.BatchID, &b.ExpirationDate, &b.TotalPayrollAmount, &b.IsActive, &b.CreatedAt,
	)
	if err != nil {
		return batch.Batch{}, fmt.Errorf("failed to rotate batch: %w", err)
	}

	return b, nil
}

func (r *batchRepository) getActive(ctx context.Context) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	var b batch.Batch
	err := q.QueryRow(ctx, `
		SELECT id, batch_id, expiration_date, total_payroll_amount, is_active, created_at
		FROM batches
		WHERE is_active = true AND expiration_date >= NOW()
	`).Scan(&b.ID, &b.BatchID, &b.ExpirationDate, &b.TotalPayrollAmount, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return batch.Batch{}, batch.ErrNoActiveBatch
		}
		return batch.Batch{}, fmt.Errorf("failed to get active batch: %w", err)
	}

	return b, nil
}
