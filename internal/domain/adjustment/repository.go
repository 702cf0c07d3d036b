package adjustment

import (
	"context"
	"time"
)

type Repository interface {
	CreateDeduction(ctx context.Context, d Deduction) (Deduction, error)
	CreateIncentive(ctx context.Context, i Incentive) (Incentive, error)
	CreateCompensation(ctx context.Context, c Compensation) (Compensation, error)

	ListDeductions(ctx context.Context, unconsumedOnly bool) ([]Deduction, error)
	ListIncentives(ctx context.Context, unconsumedOnly bool) ([]Incentive, error)
	ListCompensations(ctx context.Context, unconsumedOnly bool) ([]Compensation, error)

	// Consumption marks are issued only by the payroll finalizer, inside
	// its transaction, for the exact rows that contributed to a batch.
	MarkDeductionsConsumed(ctx context.Context, ids []string) error
	MarkIncentivesReceived(ctx context.Context, ids []string, receivedAt time.Time) error
	MarkCompensationsConsumed(ctx context.Context, ids []string) error
}
