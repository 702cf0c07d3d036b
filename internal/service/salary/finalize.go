package salary

import (
	"context"
	"fmt"
	"strings"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
)

// Finalize closes a payroll batch: ledger rows are written, the consumed
// adjustment rows are marked, attendance is archived under a freshly
// rotated batch id and the batch participants are notified. The whole
// sequence runs in a single transaction.
func (s *SalaryService) Finalize(ctx context.Context, req payroll.FinalizeRequest) (payroll.FinalizeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.FinalizeResponse{}, err
	}

	var resp payroll.FinalizeResponse
	err := s.runInTx(ctx, func(ctx context.Context) error {
		var err error
		resp, err = s.finalize(ctx, req.BatchID)
		return err
	})
	if err != nil {
		return payroll.FinalizeResponse{}, err
	}

	return resp, nil
}

func (s *SalaryService) finalize(ctx context.Context, batchID string) (payroll.FinalizeResponse, error) {
	requested := strings.TrimSpace(batchID)

	// The pseudo-batch skips the replay guard: its ledger rows all share
	// the "N/A" id, and consumption of the adjustment rows already makes
	// a second run a no-op rather than a double payment.
	if !strings.EqualFold(requested, payroll.PseudoBatchID) {
		exists, err := s.historyRepo.ExistsForBatch(ctx, requested)
		if err != nil {
			return payroll.FinalizeResponse{}, err
		}
		if exists {
			return payroll.FinalizeResponse{}, payroll.ErrBatchAlreadyFinalized
		}
	}

	batches, err := s.CalculateNet(ctx)
	if err != nil {
		return payroll.FinalizeResponse{}, err
	}

	var target *payroll.NetBatch
	for i := range batches {
		if strings.EqualFold(strings.TrimSpace(batches[i].BatchID), requested) {
			target = &batches[i]
			break
		}
	}
	if target == nil {
		return payroll.FinalizeResponse{}, payroll.ErrBatchNotFound
	}

	now := s.now()

	histories := make([]payroll.History, 0, len(target.Employees))
	var deductionIDs, incentiveIDs, compensationIDs []string
	for _, emp := range target.Employees {
		histories = append(histories, payroll.History{
			BatchID:                  target.BatchID,
			EmployeeID:               emp.EmployeeID,
			Name:                     emp.Name,
			Position:                 emp.Position,
			TotalWorkHours:           emp.TotalWorkHours,
			TotalOvertimeHours:       emp.TotalOvertimeHours,
			DailyWorkHours:           emp.DailyWorkHours,
			DailyOvertimeHours:       emp.DailyOvertimeHours,
			HourlyRate:               emp.Rates.HourlyRate,
			OvertimeRate:             emp.Rates.OvertimeRate,
			HolidayRate:              emp.Rates.HolidayRate,
			GrossSalary:              emp.GrossSalary,
			BenefitsDeductionsAmount: emp.BenefitsDeductionsAmount,
			IncentiveAmount:          emp.IncentiveAmount,
			PaidLeaveAmount:          emp.PaidLeaveAmount,
			DeductibleAmount:         emp.DeductibleAmount,
			NetSalary:                emp.NetSalary,
			PayrollDate:              now,
		})

		for _, it := range emp.DeductionItems {
			deductionIDs = append(deductionIDs, it.ID)
		}
		for _, it := range emp.IncentiveItems {
			incentiveIDs = append(incentiveIDs, it.ID)
		}
		for _, it := range emp.PaidLeaveItems {
			compensationIDs = append(compensationIDs, it.ID)
		}
		for _, it := range emp.DeductibleItems {
			compensationIDs = append(compensationIDs, it.ID)
		}
	}

	if err := s.historyRepo.CreateBulk(ctx, histories); err != nil {
		return payroll.FinalizeResponse{}, err
	}

	if err := s.adjustmentRepo.MarkDeductionsConsumed(ctx, deductionIDs); err != nil {
		return payroll.FinalizeResponse{}, err
	}
	if err := s.adjustmentRepo.MarkIncentivesReceived(ctx, incentiveIDs, now); err != nil {
		return payroll.FinalizeResponse{}, err
	}
	if err := s.adjustmentRepo.MarkCompensationsConsumed(ctx, compensationIDs); err != nil {
		return payroll.FinalizeResponse{}, err
	}

	newBatchID := batch.NewBatchID(now)

	if _, err := s.attendanceRepo.FinalizeBatch(ctx, target.BatchID, newBatchID); err != nil {
		return payroll.FinalizeResponse{}, fmt.Errorf("archive attendance: %w", err)
	}

	if _, err := s.batchRepo.Rotate(ctx, newBatchID, now.Add(batch.Window), target.TotalNetSalary); err != nil {
		return payroll.FinalizeResponse{}, fmt.Errorf("rotate batch: %w", err)
	}

	notifications := make([]notification.Notification, 0, len(target.Employees))
	for _, emp := range target.Employees {
		notifications = append(notifications, notification.Notification{
			RecipientID: emp.EmployeeID,
			Type:        notification.TypePayrollFinalized,
			Message:     fmt.Sprintf("Your payroll for batch %s has been finalized.", target.BatchID),
		})
	}
	if err := s.notificationRepo.CreateBulk(ctx, notifications); err != nil {
		return payroll.FinalizeResponse{}, err
	}

	return payroll.FinalizeResponse{
		NewBatchID:         newBatchID,
		TotalPayrollAmount: target.TotalNetSalary,
	}, nil
}
