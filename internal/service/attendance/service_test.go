package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	r.ID = fmt.Sprintf("att-%d", len(f.records)+1)
	r.CreatedAt = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
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

func (f *fakeAttendanceRepo) FinalizeBatch(context.Context, string, string) (int64, error) {
	return 0, nil
}

type fakeBatchRepo struct {
	active *batch.Batch
}

func (f *fakeBatchRepo) GetOrCreateActive(_ context.Context, candidateID string, expiresAt time.Time) (batch.Batch, error) {
	if f.active == nil {
		f.active = &batch.Batch{ID: "1", BatchID: candidateID, ExpirationDate: expiresAt, IsActive: true}
	}
	return *f.active, nil
}

func (f *fakeBatchRepo) Rotate(context.Context, string, time.Time, decimal.Decimal) (batch.Batch, error) {
	return batch.Batch{}, nil
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

func newTestService() (*AttendanceService, *fakeAttendanceRepo, *fakeBatchRepo, *fakeDirectory) {
	repo := &fakeAttendanceRepo{}
	batches := &fakeBatchRepo{}
	directory := &fakeDirectory{accounts: []account.Account{
		{ID: "emp-1", FirstName: "Juan", LastName: "Dela Cruz", Position: "Developer"},
	}}
	svc := NewAttendanceService(repo, batches, directory)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }
	return svc, repo, batches, directory
}

func TestIngest_ParsesDurationsAndStampsBatch(t *testing.T) {
	svc, repo, batches, _ := newTestService()

	resp, err := svc.Ingest(context.Background(), attendance.CreateRequest{
		EmployeeID:    "emp-1",
		TotalHours:    "8h 30m",
		OvertimeHours: "1h",
		IsHoliday:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, 510, resp.WorkMinutes)
	assert.Equal(t, 60, resp.OvertimeMinutes)
	assert.Equal(t, "8h 30m", resp.TotalHours)
	assert.Equal(t, 1, resp.HolidayCount)
	assert.Equal(t, "Juan Dela Cruz", resp.Name)
	assert.Equal(t, "Developer", resp.Position)

	require.NotNil(t, batches.active)
	assert.Equal(t, batches.active.BatchID, resp.BatchID)
	assert.Equal(t, batches.active.BatchID, repo.records[0].BatchID)
}

func TestIngest_MalformedDurationStoresZero(t *testing.T) {
	svc, _, _, _ := newTestService()

	resp, err := svc.Ingest(context.Background(), attendance.CreateRequest{
		EmployeeID: "emp-1",
		TotalHours: "eight hours",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.WorkMinutes)
	assert.Equal(t, "0h 0m", resp.TotalHours)
}

func TestIngest_ReusesOpenBatch(t *testing.T) {
	svc, repo, _, _ := newTestService()

	first, err := svc.Ingest(context.Background(), attendance.CreateRequest{EmployeeID: "emp-1", TotalHours: "8h"})
	require.NoError(t, err)
	second, err := svc.Ingest(context.Background(), attendance.CreateRequest{EmployeeID: "emp-2", TotalHours: "4h"})
	require.NoError(t, err)

	assert.Equal(t, first.BatchID, second.BatchID)
	assert.Len(t, repo.records, 2)
}

func TestIngest_ValidatesRequest(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Ingest(context.Background(), attendance.CreateRequest{EmployeeID: "", TotalHours: ""})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestIngest_SurvivesDirectoryOutage(t *testing.T) {
	svc, _, _, directory := newTestService()
	directory.err = assert.AnError

	resp, err := svc.Ingest(context.Background(), attendance.CreateRequest{EmployeeID: "emp-1", TotalHours: "8h"})
	require.NoError(t, err)
	assert.Empty(t, resp.Name)
	assert.Equal(t, 480, resp.WorkMinutes)
}

func TestListOpen_ExcludesFinalized(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.records = []attendance.Record{
		{ID: "att-1", EmployeeID: "emp-1", BatchID: "batch-1", IsFinalized: false},
		{ID: "att-2", EmployeeID: "emp-2", BatchID: "batch-0", IsFinalized: true},
	}

	responses, err := svc.ListOpen(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "att-1", responses[0].ID)
}
