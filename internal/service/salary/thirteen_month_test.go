package salary

import (
	"context"
	"testing"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) addHistory(employeeID, name, batchID string, gross float64, payrollDate time.Time) {
	e.histories.records = append(e.histories.records, payroll.History{
		ID:          batchID + "-" + employeeID,
		BatchID:     batchID,
		EmployeeID:  employeeID,
		Name:        name,
		GrossSalary: decimal.NewFromFloat(gross),
		NetSalary:   decimal.NewFromFloat(gross),
		DailyWorkHours: []payroll.DailyHours{
			{Hours: decimal.NewFromInt(8), Date: payrollDate},
		},
		PayrollDate: payrollDate,
	})
}

func TestThirteenthMonth_OneTwelfthOfYearGross(t *testing.T) {
	env := newTestEnv()
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 12000, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-200", 12000, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))

	result, err := env.svc.ThirteenthMonth(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, result, 1)

	r := result[0]
	assert.Equal(t, "emp-1", r.EmployeeID)
	assert.Equal(t, 2025, r.Year)
	assert.Equal(t, "24000.00", r.TotalGrossSalary.StringFixed(2))
	assert.Equal(t, "2000.00", r.ThirteenthMonthPay.StringFixed(2))
	assert.Len(t, r.Batches, 2)
	assert.Equal(t, 1, r.Batches[0].DaysWorked)
}

func TestThirteenthMonth_FiltersByYear(t *testing.T) {
	env := newTestEnv()
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 6000, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC))
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-200", 12000, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	result, err := env.svc.ThirteenthMonth(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "12000.00", result[0].TotalGrossSalary.StringFixed(2))
	assert.Equal(t, "1000.00", result[0].ThirteenthMonthPay.StringFixed(2))
}

func TestThirteenthMonth_RoundsToCentavos(t *testing.T) {
	env := newTestEnv()
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 1000, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	result, err := env.svc.ThirteenthMonth(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, result, 1)

	// 1000 / 12 = 83.333...
	assert.Equal(t, "83.33", result[0].ThirteenthMonthPay.StringFixed(2))
}

func TestThirteenthMonth_EmptyYear(t *testing.T) {
	env := newTestEnv()

	result, err := env.svc.ThirteenthMonth(context.Background(), 2025)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestAllHistory_GroupsByBatchNewestFirst(t *testing.T) {
	env := newTestEnv()
	older := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 800, older)
	env.addHistory("emp-2", "Maria Santos", "batch-100", 400, older)
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-200", 900, newer)

	groups, err := env.svc.AllHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "batch-200", groups[0].BatchID)
	assert.Len(t, groups[0].Records, 1)
	assert.Equal(t, "batch-100", groups[1].BatchID)
	assert.Len(t, groups[1].Records, 2)
}

func TestEmployeeHistory_OnlyOwnRows(t *testing.T) {
	env := newTestEnv()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 800, date)
	env.addHistory("emp-2", "Maria Santos", "batch-100", 400, date)

	records, err := env.svc.EmployeeHistory(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", records[0].EmployeeID)
}

func TestPayslipPDF(t *testing.T) {
	env := newTestEnv()
	env.addHistory("emp-1", "Juan Dela Cruz", "batch-100", 800, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))

	pdf, err := env.svc.PayslipPDF(context.Background(), "batch-100", "emp-1")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPayslipPDF_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.PayslipPDF(context.Background(), "batch-100", "emp-1")
	assert.ErrorIs(t, err, payroll.ErrHistoryNotFound)
}
