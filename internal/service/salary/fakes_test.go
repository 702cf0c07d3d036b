package salary

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/shopspring/decimal"
)

// In-memory repository doubles. Behavior mirrors the postgresql
// implementations closely enough for the service-level scenarios.

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	r.ID = fmt.Sprintf("att-%d", len(f.records)+1)
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) ListUnfinalized(context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if !r.IsFinalized {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByBatch(_ context.Context, batchID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.BatchID == batchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) FinalizeBatch(_ context.Context, oldBatchID, newBatchID string) (int64, error) {
	var n int64
	for i := range f.records {
		if f.records[i].BatchID == oldBatchID && !f.records[i].IsFinalized {
			f.records[i].BatchID = newBatchID
			f.records[i].IsFinalized = true
			n++
		}
	}
	return n, nil
}

type fakeBatchRepo struct {
	active  *batch.Batch
	retired []batch.Batch
}

func (f *fakeBatchRepo) GetOrCreateActive(_ context.Context, candidateID string, expiresAt time.Time) (batch.Batch, error) {
	if f.active == nil {
		f.active = &batch.Batch{ID: "1", BatchID: candidateID, ExpirationDate: expiresAt, IsActive: true}
	}
	return *f.active, nil
}

func (f *fakeBatchRepo) Rotate(_ context.Context, newBatchID string, expiresAt time.Time, totalPayroll decimal.Decimal) (batch.Batch, error) {
	if f.active != nil {
		f.retired = append(f.retired, *f.active)
	}
	f.active = &batch.Batch{
		ID:                 fmt.Sprintf("%d", len(f.retired)+1),
		BatchID:            newBatchID,
		ExpirationDate:     expiresAt,
		TotalPayrollAmount: totalPayroll,
		IsActive:           true,
	}
	return *f.active, nil
}

type fakePlanRepo struct {
	plans []plan.CompensationPlan
}

func (f *fakePlanRepo) Create(_ context.Context, p plan.CompensationPlan) (plan.CompensationPlan, error) {
	p.ID = fmt.Sprintf("plan-%d", len(f.plans)+1)
	f.plans = append(f.plans, p)
	return p, nil
}

func (f *fakePlanRepo) List(context.Context) ([]plan.CompensationPlan, error) {
	return f.plans, nil
}

func (f *fakePlanRepo) GetByPosition(_ context.Context, position string) (plan.CompensationPlan, error) {
	for _, p := range f.plans {
		if strings.EqualFold(p.Position, position) {
			return p, nil
		}
	}
	return plan.CompensationPlan{}, plan.ErrPlanNotFound
}

func (f *fakePlanRepo) Update(_ context.Context, req plan.UpdateRequest) (plan.CompensationPlan, error) {
	return plan.CompensationPlan{}, plan.ErrPlanNotFound
}

type fakeAdjustmentRepo struct {
	deductions    []adjustment.Deduction
	incentives    []adjustment.Incentive
	compensations []adjustment.Compensation
}

func (f *fakeAdjustmentRepo) CreateDeduction(_ context.Context, d adjustment.Deduction) (adjustment.Deduction, error) {
	d.ID = fmt.Sprintf("ded-%d", len(f.deductions)+1)
	f.deductions = append(f.deductions, d)
	return d, nil
}

func (f *fakeAdjustmentRepo) CreateIncentive(_ context.Context, i adjustment.Incentive) (adjustment.Incentive, error) {
	i.ID = fmt.Sprintf("inc-%d", len(f.incentives)+1)
	i.Status = adjustment.IncentiveStatusPending
	f.incentives = append(f.incentives, i)
	return i, nil
}

func (f *fakeAdjustmentRepo) CreateCompensation(_ context.Context, c adjustment.Compensation) (adjustment.Compensation, error) {
	c.ID = fmt.Sprintf("comp-%d", len(f.compensations)+1)
	f.compensations = append(f.compensations, c)
	return c, nil
}

func (f *fakeAdjustmentRepo) ListDeductions(_ context.Context, unconsumedOnly bool) ([]adjustment.Deduction, error) {
	var out []adjustment.Deduction
	for _, d := range f.deductions {
		if !unconsumedOnly || !d.IsAlreadyAdded {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeAdjustmentRepo) ListIncentives(_ context.Context, unconsumedOnly bool) ([]adjustment.Incentive, error) {
	var out []adjustment.Incentive
	for _, i := range f.incentives {
		if !unconsumedOnly || !i.IsAlreadyAdded {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeAdjustmentRepo) ListCompensations(_ context.Context, unconsumedOnly bool) ([]adjustment.Compensation, error) {
	var out []adjustment.Compensation
	for _, c := range f.compensations {
		if !unconsumedOnly || !c.IsAlreadyAdded {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAdjustmentRepo) MarkDeductionsConsumed(_ context.Context, ids []string) error {
	for _, id := range ids {
		for i := range f.deductions {
			if f.deductions[i].ID == id {
				f.deductions[i].IsAlreadyAdded = true
			}
		}
	}
	return nil
}

func (f *fakeAdjustmentRepo) MarkIncentivesReceived(_ context.Context, ids []string, receivedAt time.Time) error {
	for _, id := range ids {
		for i := range f.incentives {
			if f.incentives[i].ID == id {
				f.incentives[i].IsAlreadyAdded = true
				f.incentives[i].Status = adjustment.IncentiveStatusReceived
				t := receivedAt
				f.incentives[i].DateReceived = &t
			}
		}
	}
	return nil
}

func (f *fakeAdjustmentRepo) MarkCompensationsConsumed(_ context.Context, ids []string) error {
	for _, id := range ids {
		for i := range f.compensations {
			if f.compensations[i].ID == id {
				f.compensations[i].IsAlreadyAdded = true
			}
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	records []payroll.History
}

func (f *fakeHistoryRepo) CreateBulk(_ context.Context, records []payroll.History) error {
	for _, h := range records {
		h.ID = fmt.Sprintf("hist-%d", len(f.records)+1)
		f.records = append(f.records, h)
	}
	return nil
}

func (f *fakeHistoryRepo) ExistsForBatch(_ context.Context, batchID string) (bool, error) {
	for _, h := range f.records {
		if strings.EqualFold(h.BatchID, batchID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHistoryRepo) ListAll(context.Context) ([]payroll.History, error) {
	out := make([]payroll.History, len(f.records))
	copy(out, f.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PayrollDate.After(out[j].PayrollDate)
	})
	return out, nil
}

func (f *fakeHistoryRepo) ListByEmployee(_ context.Context, employeeID string) ([]payroll.History, error) {
	var out []payroll.History
	for _, h := range f.records {
		if h.EmployeeID == employeeID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PayrollDate.After(out[j].PayrollDate)
	})
	return out, nil
}

func (f *fakeHistoryRepo) GetByBatchAndEmployee(_ context.Context, batchID, employeeID string) (payroll.History, error) {
	for _, h := range f.records {
		if h.BatchID == batchID && h.EmployeeID == employeeID {
			return h, nil
		}
	}
	return payroll.History{}, payroll.ErrHistoryNotFound
}

type fakeNotificationRepo struct {
	notifications []notification.Notification
}

func (f *fakeNotificationRepo) CreateBulk(_ context.Context, ns []notification.Notification) error {
	f.notifications = append(f.notifications, ns...)
	return nil
}

func (f *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID string) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, recipientID, notificationID string) error {
	for i := range f.notifications {
		if f.notifications[i].ID == notificationID && f.notifications[i].RecipientID == recipientID {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

type fakeDirectory struct {
	accounts []account.Account
	err      error
}

func (f *fakeDirectory) ListAccounts(context.Context) ([]account.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts, nil
}

type testEnv struct {
	svc           *SalaryService
	attendance    *fakeAttendanceRepo
	batches       *fakeBatchRepo
	plans         *fakePlanRepo
	adjustments   *fakeAdjustmentRepo
	histories     *fakeHistoryRepo
	notifications *fakeNotificationRepo
	directory     *fakeDirectory
	now           time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		attendance:    &fakeAttendanceRepo{},
		batches:       &fakeBatchRepo{},
		plans:         &fakePlanRepo{},
		adjustments:   &fakeAdjustmentRepo{},
		histories:     &fakeHistoryRepo{},
		notifications: &fakeNotificationRepo{},
		directory:     &fakeDirectory{},
		now:           time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
	}
	env.svc = &SalaryService{
		attendanceRepo:   env.attendance,
		batchRepo:        env.batches,
		planRepo:         env.plans,
		adjustmentRepo:   env.adjustments,
		historyRepo:      env.histories,
		notificationRepo: env.notifications,
		directory:        env.directory,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	env.svc.now = func() time.Time { return env.now }
	return env
}

func (e *testEnv) addAttendance(employeeID, batchID string, workMinutes, overtimeMinutes int, isHoliday bool) {
	timeIn := e.now.Add(-8 * time.Hour)
	e.attendance.records = append(e.attendance.records, attendance.Record{
		ID:              fmt.Sprintf("att-%d", len(e.attendance.records)+1),
		EmployeeID:      employeeID,
		BatchID:         batchID,
		TimeIn:          &timeIn,
		WorkMinutes:     workMinutes,
		OvertimeMinutes: overtimeMinutes,
		IsHoliday:       isHoliday,
		CreatedAt:       e.now,
	})
}

func (e *testEnv) addPlan(position string, hourly, overtime, holiday int64) {
	e.plans.plans = append(e.plans.plans, plan.CompensationPlan{
		ID:       fmt.Sprintf("plan-%d", len(e.plans.plans)+1),
		Position: position,
		Rates: plan.Rates{
			HourlyRate:   decimal.NewFromInt(hourly),
			OvertimeRate: decimal.NewFromInt(overtime),
			HolidayRate:  decimal.NewFromInt(holiday),
		},
	})
}

func (e *testEnv) addAccount(id, first, last, position string) {
	e.directory.accounts = append(e.directory.accounts, account.Account{
		ID: id, FirstName: first, LastName: last, Position: position,
	})
}
