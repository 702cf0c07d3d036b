package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollHistoryRepository struct {
	db *database.DB
}

func NewPayrollHistoryRepository(db *database.DB) payroll.HistoryRepository {
	return &payrollHistoryRepository{db: db}
}

const historyColumns = `id, batch_id, employee_id, name, position,
	total_work_hours, total_overtime_hours, daily_work_hours, daily_overtime_hours,
	hourly_rate, overtime_rate, holiday_rate, gross_salary,
	benefits_deductions_amount, incentive_amount, paid_leave_amount, deductible_amount,
	net_salary, payroll_date`

func (r *payrollHistoryRepository) CreateBulk(ctx context.Context, records []payroll.History) error {
	q := GetQuerier(ctx, r.db)

	for _, h := range records {
		dailyWork, err := json.Marshal(h.DailyWorkHours)
		if err != nil {
			return fmt.Errorf("failed to marshal daily work hours: %w", err)
		}
		dailyOvertime, err := json.Marshal(h.DailyOvertimeHours)
		if err != nil {
			return fmt.Errorf("failed to marshal daily overtime hours: %w", err)
		}

		_, err = q.Exec(ctx, `
			INSERT INTO payroll_histories (
				batch_id, employee_id, name, position,
				total_work_hours, total_overtime_hours, daily_work_hours, daily_overtime_hours,
				hourly_rate, overtime_rate, holiday_rate, gross_salary,
				benefits_deductions_amount, incentive_amount, paid_leave_amount, deductible_amount,
				net_salary, payroll_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		`,
			h.BatchID, h.EmployeeID, h.Name, h.Position,
			h.TotalWorkHours, h.TotalOvertimeHours, dailyWork, dailyOvertime,
			h.HourlyRate, h.OvertimeRate, h.HolidayRate, h.GrossSalary,
			h.BenefitsDeductionsAmount, h.IncentiveAmount, h.PaidLeaveAmount, h.DeductibleAmount,
			h.NetSalary, h.PayrollDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payroll history for employee %s: %w", h.EmployeeID, err)
		}
	}

	return nil
}

func (r *payrollHistoryRepository) ExistsForBatch(ctx context.Context, batchID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payroll_histories WHERE LOWER(batch_id) = LOWER($1))`,
		batchID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll history for batch: %w", err)
	}

	return exists, nil
}

func (r *payrollHistoryRepository) ListAll(ctx context.Context) ([]payroll.History, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payroll_histories
		ORDER BY payroll_date DESC, employee_id
	`, historyColumns)

	return r.list(ctx, query)
}

func (r *payrollHistoryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.History, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payroll_histories
		WHERE employee_id = $1
		ORDER BY payroll_date DESC
	`, historyColumns)

	return r.list(ctx, query, employeeID)
}

func (r *payrollHistoryRepository) GetByBatchAndEmployee(ctx context.Context, batchID, employeeID string) (payroll.History, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payroll_histories
		WHERE batch_id = $1 AND employee_id = $2
	`, historyColumns)

	q := GetQuerier(ctx, r.db)
	h, err := scanHistory(q.QueryRow(ctx, query, batchID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.History{}, payroll.ErrHistoryNotFound
		}
		return payroll.History{}, fmt.Errorf("failed to get payroll history: %w", err)
	}

	return h, nil
}

func (r *payrollHistoryRepository) list(ctx context.Context, query string, args ...interface{}) ([]payroll.History, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll histories: %w", err)
	}
	defer rows.Close()

	var records []payroll.History
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll history: %w", err)
		}
		records = append(records, h)
	}

	return records, nil
}

func scanHistory(row pgx.Row) (payroll.History, error) {
	var h payroll.History
	var dailyWork, dailyOvertime []byte

	err := row.Scan(
		&h.ID, &h.BatchID, &h.EmployeeID, &h.Name, &h.Position,
		&h.TotalWorkHours, &h.TotalOvertimeHours, &dailyWork, &dailyOvertime,
		&h.HourlyRate, &h.OvertimeRate, &h.HolidayRate, &h.GrossSalary,
		&h.BenefitsDeductionsAmount, &h.IncentiveAmount, &h.PaidLeaveAmount, &h.DeductibleAmount,
		&h.NetSalary, &h.PayrollDate,
	)
	if err != nil {
		return payroll.History{}, err
	}

	if err := json.Unmarshal(dailyWork, &h.DailyWorkHours); err != nil {
		return payroll.History{}, fmt.Errorf("failed to unmarshal daily work hours: %w", err)
	}
	if err := json.Unmarshal(dailyOvertime, &h.DailyOvertimeHours); err != nil {
		return payroll.History{}, fmt.Errorf("failed to unmarshal daily overtime hours: %w", err)
	}

	return h, nil
}
