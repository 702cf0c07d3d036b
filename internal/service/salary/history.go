package salary

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
)

func historyResponse(h payroll.History) payroll.HistoryResponse {
	return payroll.HistoryResponse{
		ID:                       h.ID,
		BatchID:                  h.BatchID,
		EmployeeID:               h.EmployeeID,
		Name:                     h.Name,
		Position:                 h.Position,
		TotalWorkHours:           h.TotalWorkHours,
		TotalOvertimeHours:       h.TotalOvertimeHours,
		DailyWorkHours:           h.DailyWorkHours,
		DailyOvertimeHours:       h.DailyOvertimeHours,
		HourlyRate:               h.HourlyRate,
		OvertimeRate:             h.OvertimeRate,
		HolidayRate:              h.HolidayRate,
		GrossSalary:              h.GrossSalary,
		BenefitsDeductionsAmount: h.BenefitsDeductionsAmount,
		IncentiveAmount:          h.IncentiveAmount,
		PaidLeaveAmount:          h.PaidLeaveAmount,
		DeductibleAmount:         h.DeductibleAmount,
		NetSalary:                h.NetSalary,
		PayrollDate:              h.PayrollDate,
	}
}

// groupByBatch preserves the incoming order (newest payroll date first)
// while folding rows that share a batch id into one group.
func groupByBatch(records []payroll.History) []payroll.HistoryBatchGroup {
	groups := make([]payroll.HistoryBatchGroup, 0)
	index := make(map[string]int)

	for _, h := range records {
		i, ok := index[h.BatchID]
		if !ok {
			i = len(groups)
			index[h.BatchID] = i
			groups = append(groups, payroll.HistoryBatchGroup{
				BatchID:     h.BatchID,
				PayrollDate: h.PayrollDate,
			})
		}
		groups[i].Records = append(groups[i].Records, historyResponse(h))
	}

	return groups
}

func (s *SalaryService) AllHistory(ctx context.Context) ([]payroll.HistoryBatchGroup, error) {
	records, err := s.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payroll histories: %w", err)
	}

	return groupByBatch(records), nil
}

func (s *SalaryService) EmployeeHistory(ctx context.Context, employeeID string) ([]payroll.HistoryResponse, error) {
	records, err := s.historyRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list payroll histories for employee: %w", err)
	}

	responses := make([]payroll.HistoryResponse, 0, len(records))
	for _, h := range records {
		responses = append(responses, historyResponse(h))
	}

	return responses, nil
}

func (s *SalaryService) EmployeeHistoryByBatch(ctx context.Context, employeeID string) ([]payroll.HistoryBatchGroup, error) {
	records, err := s.historyRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list payroll histories for employee: %w", err)
	}

	return groupByBatch(records), nil
}
