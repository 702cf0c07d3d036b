// Package adjustment exposes the boundary writes for the three
// adjustment sources. Consumption is never done here; only the payroll
// finalizer flips is_already_added.
package adjustment

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
)

type AdjustmentService struct {
	repo adjustment.Repository
}

func NewAdjustmentService(repo adjustment.Repository) *AdjustmentService {
	return &AdjustmentService{repo: repo}
}

func (s *AdjustmentService) AddDeduction(ctx context.Context, req adjustment.CreateDeductionRequest) (adjustment.Deduction, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Deduction{}, err
	}

	created, err := s.repo.CreateDeduction(ctx, adjustment.Deduction{
		EmployeeID:  req.EmployeeID,
		BenefitName: req.BenefitName,
		Amount:      req.Amount,
	})
	if err != nil {
		return adjustment.Deduction{}, fmt.Errorf("create benefit deduction: %w", err)
	}
	return created, nil
}

func (s *AdjustmentService) AddIncentive(ctx context.Context, req adjustment.CreateIncentiveRequest) (adjustment.Incentive, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Incentive{}, err
	}

	created, err := s.repo.CreateIncentive(ctx, adjustment.Incentive{
		EmployeeID:  req.EmployeeID,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      adjustment.IncentiveStatusPending,
	})
	if err != nil {
		return adjustment.Incentive{}, fmt.Errorf("create incentive: %w", err)
	}
	return created, nil
}

func (s *AdjustmentService) AddCompensation(ctx context.Context, req adjustment.CreateCompensationRequest) (adjustment.Compensation, error) {
	if err := req.Validate(); err != nil {
		return adjustment.Compensation{}, err
	}

	created, err := s.repo.CreateCompensation(ctx, adjustment.Compensation{
		EmployeeID:  req.EmployeeID,
		BenefitType: adjustment.BenefitType(req.BenefitType),
		Amount:      req.Amount,
	})
	if err != nil {
		return adjustment.Compensation{}, fmt.Errorf("create employee compensation: %w", err)
	}
	return created, nil
}

func (s *AdjustmentService) ListDeductions(ctx context.Context) ([]adjustment.Deduction, error) {
	return s.repo.ListDeductions(ctx, false)
}

func (s *AdjustmentService) ListIncentives(ctx context.Context) ([]adjustment.Incentive, error) {
	return s.repo.ListIncentives(ctx, false)
}

func (s *AdjustmentService) ListCompensations(ctx context.Context) ([]adjustment.Compensation, error) {
	return s.repo.ListCompensations(ctx, false)
}
