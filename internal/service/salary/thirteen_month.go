package salary

import (
	"context"
	"fmt"
	"sort"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// ThirteenthMonth derives the statutory 13th-month pay for every
// employee with a ledger row in the given year: one twelfth of the
// year's summed gross salary.
func (s *SalaryService) ThirteenthMonth(ctx context.Context, year int) ([]payroll.ThirteenthMonthResponse, error) {
	records, err := s.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payroll histories: %w", err)
	}

	byEmployee := make(map[string]*payroll.ThirteenthMonthResponse)
	for _, h := range records {
		if h.PayrollDate.Year() != year {
			continue
		}

		resp, ok := byEmployee[h.EmployeeID]
		if !ok {
			resp = &payroll.ThirteenthMonthResponse{
				EmployeeID: h.EmployeeID,
				Name:       h.Name,
				Year:       year,
			}
			byEmployee[h.EmployeeID] = resp
		}

		resp.TotalGrossSalary = resp.TotalGrossSalary.Add(h.GrossSalary)
		resp.Batches = append(resp.Batches, payroll.ThirteenthMonthBatch{
			BatchID:     h.BatchID,
			GrossSalary: h.GrossSalary,
			DaysWorked:  h.DaysWorked(),
		})
	}

	employeeIDs := make([]string, 0, len(byEmployee))
	for id := range byEmployee {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	result := make([]payroll.ThirteenthMonthResponse, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		resp := byEmployee[id]
		resp.ThirteenthMonthPay = resp.TotalGrossSalary.Div(twelve).Round(2)
		result = append(result, *resp)
	}

	return result, nil
}
