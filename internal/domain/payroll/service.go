package payroll

import "context"

type Service interface {
	// Read-side projections. Both are pure derivations: invoking them
	// repeatedly without intervening writes yields identical output.
	CalculateGross(ctx context.Context) ([]GrossBatch, error)
	CalculateNet(ctx context.Context) ([]NetBatch, error)

	// Finalize is the one-way transition: ledger rows written,
	// adjustments consumed, attendance archived, batch rotated.
	Finalize(ctx context.Context, req FinalizeRequest) (FinalizeResponse, error)

	AllHistory(ctx context.Context) ([]HistoryBatchGroup, error)
	EmployeeHistory(ctx context.Context, employeeID string) ([]HistoryResponse, error)
	EmployeeHistoryByBatch(ctx context.Context, employeeID string) ([]HistoryBatchGroup, error)

	ThirteenthMonth(ctx context.Context, year int) ([]ThirteenthMonthResponse, error)

	PayslipPDF(ctx context.Context, batchID, employeeID string) ([]byte, error)
}
