package salary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/shopspring/decimal"
)

var (
	sixty                 = decimal.NewFromInt(60)
	holidayOvertimeFactor = decimal.NewFromFloat(1.30)
	regularOvertimeFactor = decimal.NewFromFloat(1.25)
)

func (s *SalaryService) CalculateGross(ctx context.Context) ([]payroll.GrossBatch, error) {
	records, err := s.attendanceRepo.ListUnfinalized(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unfinalized attendance: %w", err)
	}

	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list compensation plans: %w", err)
	}

	accounts, err := s.directory.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}

	return buildGrossBatches(records, buildRateTable(plans), rosterIndex(accounts)), nil
}

// buildRateTable maps position name to its pay rates.
func buildRateTable(plans []plan.CompensationPlan) map[string]plan.Rates {
	table := make(map[string]plan.Rates, len(plans))
	for _, p := range plans {
		table[p.Position] = p.Rates
	}
	return table
}

func rosterIndex(accounts []account.Account) map[string]account.Account {
	index := make(map[string]account.Account, len(accounts))
	for _, a := range accounts {
		index[a.ID] = a
	}
	return index
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}

// deriveHours converts one attendance record to its payable work and
// overtime decimal hours. Holiday work hours are scaled by the plan's
// holiday multiplier and holiday overtime by 1.30; regular overtime is
// scaled by 1.25 and regular work hours are left as-is.
func deriveHours(rec attendance.Record, rates plan.Rates) (work, overtime decimal.Decimal) {
	work = minutesToHours(rec.WorkMinutes)
	overtime = minutesToHours(rec.OvertimeMinutes)

	if rec.IsHoliday {
		work = work.Mul(rates.HolidayRate)
		overtime = overtime.Mul(holidayOvertimeFactor)
	} else {
		overtime = overtime.Mul(regularOvertimeFactor)
	}
	return work, overtime
}

func recordDate(rec attendance.Record) time.Time {
	if rec.TimeIn != nil {
		return *rec.TimeIn
	}
	return rec.CreatedAt
}

// buildGrossBatches groups unfinalized attendance by (batch, employee)
// and derives the per-employee gross salary. Output ordering is fixed
// (batches and employees sorted by id) so repeated invocations without
// intervening writes produce identical projections.
func buildGrossBatches(records []attendance.Record, rateTable map[string]plan.Rates, roster map[string]account.Account) []payroll.GrossBatch {
	type batchAccumulator struct {
		employees map[string]*payroll.EmployeeGross
	}
	batches := make(map[string]*batchAccumulator)

	for _, rec := range records {
		name := rec.Name
		position := rec.Position
		if acct, ok := roster[rec.EmployeeID]; ok {
			if name == "" {
				name = acct.FullName()
			}
			if position == "" {
				position = acct.Position
			}
		}

		rates, ok := rateTable[position]
		if !ok {
			rates = plan.DefaultRates()
		}

		work, overtime := deriveHours(rec, rates)
		date := recordDate(rec)

		acc, ok := batches[rec.BatchID]
		if !ok {
			acc = &batchAccumulator{employees: make(map[string]*payroll.EmployeeGross)}
			batches[rec.BatchID] = acc
		}

		emp, ok := acc.employees[rec.EmployeeID]
		if !ok {
			emp = &payroll.EmployeeGross{
				EmployeeID: rec.EmployeeID,
				Name:       name,
				Position:   position,
				Rates:      rates,
			}
			acc.employees[rec.EmployeeID] = emp
		}

		emp.DailyWorkHours = append(emp.DailyWorkHours, payroll.DailyHours{Hours: work, Date: date, IsHoliday: rec.IsHoliday})
		emp.DailyOvertimeHours = append(emp.DailyOvertimeHours, payroll.DailyHours{Hours: overtime, Date: date, IsHoliday: rec.IsHoliday})
		emp.TotalWorkHours = emp.TotalWorkHours.Add(work)
		emp.TotalOvertimeHours = emp.TotalOvertimeHours.Add(overtime)
	}

	batchIDs := make([]string, 0, len(batches))
	for id := range batches {
		batchIDs = append(batchIDs, id)
	}
	sort.Strings(batchIDs)

	result := make([]payroll.GrossBatch, 0, len(batchIDs))
	for _, batchID := range batchIDs {
		acc := batches[batchID]

		employeeIDs := make([]string, 0, len(acc.employees))
		for id := range acc.employees {
			employeeIDs = append(employeeIDs, id)
		}
		sort.Strings(employeeIDs)

		employees := make([]payroll.EmployeeGross, 0, len(employeeIDs))
		for _, id := range employeeIDs {
			emp := acc.employees[id]
			emp.GrossSalary = emp.TotalWorkHours.Mul(emp.Rates.HourlyRate).
				Add(emp.TotalOvertimeHours.Mul(emp.Rates.OvertimeRate)).
				Round(2)
			employees = append(employees, *emp)
		}

		result = append(result, payroll.GrossBatch{BatchID: batchID, Employees: employees})
	}

	return result
}
