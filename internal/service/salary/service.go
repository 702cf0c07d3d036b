// Package salary implements the payroll computation pipeline: gross
// salary derivation from attendance, net salary composition with the
// adjustment sources, batch finalization, payroll history reads and
// 13th-month aggregation.
package salary

import (
	"context"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/JL1365/hr3-backoffice-go/internal/repository/postgresql"
)

type SalaryService struct {
	attendanceRepo   attendance.Repository
	batchRepo        batch.Repository
	planRepo         plan.Repository
	adjustmentRepo   adjustment.Repository
	historyRepo      payroll.HistoryRepository
	notificationRepo notification.Repository
	directory        account.Directory

	// runInTx wraps the finalization write sequence in one database
	// transaction; swapped for a pass-through in tests.
	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
	now     func() time.Time
}

func NewSalaryService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	batchRepo batch.Repository,
	planRepo plan.Repository,
	adjustmentRepo adjustment.Repository,
	historyRepo payroll.HistoryRepository,
	notificationRepo notification.Repository,
	directory account.Directory,
) payroll.Service {
	return &SalaryService{
		attendanceRepo:   attendanceRepo,
		batchRepo:        batchRepo,
		planRepo:         planRepo,
		adjustmentRepo:   adjustmentRepo,
		historyRepo:      historyRepo,
		notificationRepo: notificationRepo,
		directory:        directory,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}
