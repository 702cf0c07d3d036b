package payroll

import (
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PseudoBatchID labels the synthetic batch returned by the net-salary
// projection when no open attendance exists but unconsumed adjustments do.
const PseudoBatchID = "N/A"

// ========== GROSS PROJECTION ==========

type EmployeeGross struct {
	EmployeeID         string          `json:"employee_id"`
	Name               string          `json:"name"`
	Position           string          `json:"position"`
	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	DailyWorkHours     []DailyHours    `json:"daily_work_hours"`
	DailyOvertimeHours []DailyHours    `json:"daily_overtime_hours"`
	Rates              plan.Rates      `json:"rates"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
}

type GrossBatch struct {
	BatchID   string          `json:"batch_id"`
	Employees []EmployeeGross `json:"employees"`
}

// ========== NET PROJECTION ==========

// AdjustmentItem is one contributing adjustment row in a net-salary
// breakdown. The ID is carried so the finalizer can mark the exact rows
// it consumed.
type AdjustmentItem struct {
	ID        string          `json:"id"`
	Label     string          `json:"label,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type EmployeeNet struct {
	EmployeeGross

	DeductionItems  []AdjustmentItem `json:"deduction_items"`
	IncentiveItems  []AdjustmentItem `json:"incentive_items"`
	PaidLeaveItems  []AdjustmentItem `json:"paid_leave_items"`
	DeductibleItems []AdjustmentItem `json:"deductible_items"`

	BenefitsDeductionsAmount decimal.Decimal `json:"benefits_deductions_amount"`
	IncentiveAmount          decimal.Decimal `json:"incentive_amount"`
	PaidLeaveAmount          decimal.Decimal `json:"paid_leave_amount"`
	DeductibleAmount         decimal.Decimal `json:"deductible_amount"`
	NetSalary                decimal.Decimal `json:"net_salary"`
}

type NetBatch struct {
	BatchID string `json:"batch_id"`
	// legacy wire name kept for the HR4 frontend
	TotalNetSalary decimal.Decimal `json:"totalNetSalary"`
	Employees      []EmployeeNet   `json:"employees"`
}

// ========== FINALIZATION ==========

type FinalizeRequest struct {
	BatchID string `json:"batch_id"`
}

func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchID) {
		errs = append(errs, validator.ValidationError{Field: "batch_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalizeResponse struct {
	NewBatchID string `json:"new_batch_id"`
	// legacy wire name kept for the HR4 frontend
	TotalPayrollAmount decimal.Decimal `json:"totalPayrollAmount"`
}

// ========== HISTORY ==========

type HistoryResponse struct {
	ID                       string          `json:"id"`
	BatchID                  string          `json:"batch_id"`
	EmployeeID               string          `json:"employee_id"`
	Name                     string          `json:"name"`
	Position                 string          `json:"position"`
	TotalWorkHours           decimal.Decimal `json:"total_work_hours"`
	TotalOvertimeHours       decimal.Decimal `json:"total_overtime_hours"`
	DailyWorkHours           []DailyHours    `json:"daily_work_hours"`
	DailyOvertimeHours       []DailyHours    `json:"daily_overtime_hours"`
	HourlyRate               decimal.Decimal `json:"hourly_rate"`
	OvertimeRate             decimal.Decimal `json:"overtime_rate"`
	HolidayRate              decimal.Decimal `json:"holiday_rate"`
	GrossSalary              decimal.Decimal `json:"gross_salary"`
	BenefitsDeductionsAmount decimal.Decimal `json:"benefits_deductions_amount"`
	IncentiveAmount          decimal.Decimal `json:"incentive_amount"`
	PaidLeaveAmount          decimal.Decimal `json:"paid_leave_amount"`
	DeductibleAmount         decimal.Decimal `json:"deductible_amount"`
	NetSalary                decimal.Decimal `json:"net_salary"`
	PayrollDate              time.Time       `json:"payroll_date"`
}

// HistoryBatchGroup groups ledger rows under their batch, newest batch first.
type HistoryBatchGroup struct {
	BatchID     string            `json:"batch_id"`
	PayrollDate time.Time         `json:"payroll_date"`
	Records     []HistoryResponse `json:"records"`
}

// ========== 13TH MONTH ==========

type ThirteenthMonthBatch struct {
	BatchID     string          `json:"batch_id"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	DaysWorked  int             `json:"days_worked"`
}

type ThirteenthMonthResponse struct {
	EmployeeID         string                 `json:"employee_id"`
	Name               string                 `json:"name"`
	Year               int                    `json:"year"`
	TotalGrossSalary   decimal.Decimal        `json:"total_gross_salary"`
	ThirteenthMonthPay decimal.Decimal        `json:"thirteenth_month_pay"`
	Batches            []ThirteenthMonthBatch `json:"batches"`
}
