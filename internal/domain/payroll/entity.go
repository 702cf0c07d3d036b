package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyHours is one day's contribution to an employee's gross salary,
// already multiplied by the applicable holiday/overtime factor.
type DailyHours struct {
	Hours     decimal.Decimal `json:"hours"`
	Date      time.Time       `json:"date"`
	IsHoliday bool            `json:"is_holiday"`
}

// History is one immutable payroll ledger row: one per employee per
// finalized batch, never mutated or deleted after creation. It is the
// system of record for 13th-month pay and historical reporting.
type History struct {
	ID                       string
	BatchID                  string
	EmployeeID               string
	Name                     string
	Position                 string
	TotalWorkHours           decimal.Decimal
	TotalOvertimeHours       decimal.Decimal
	DailyWorkHours           []DailyHours
	DailyOvertimeHours       []DailyHours
	HourlyRate               decimal.Decimal
	OvertimeRate             decimal.Decimal
	HolidayRate              decimal.Decimal
	GrossSalary              decimal.Decimal
	BenefitsDeductionsAmount decimal.Decimal
	IncentiveAmount          decimal.Decimal
	PaidLeaveAmount          decimal.Decimal
	DeductibleAmount         decimal.Decimal
	NetSalary                decimal.Decimal
	PayrollDate              time.Time
}

// DaysWorked counts the daily entries with non-zero hours.
func (h History) DaysWorked() int {
	days := 0
	for _, d := range h.DailyWorkHours {
		if d.Hours.IsPositive() {
			days++
		}
	}
	return days
}
