package plan

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
)

type PlanService struct {
	repo plan.Repository
}

func NewPlanService(repo plan.Repository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) Create(ctx context.Context, req plan.CreateRequest) (plan.CompensationPlan, error) {
	if err := req.Validate(); err != nil {
		return plan.CompensationPlan{}, err
	}

	created, err := s.repo.Create(ctx, plan.CompensationPlan{
		Position: req.Position,
		Rates: plan.Rates{
			HourlyRate:   req.HourlyRate,
			OvertimeRate: req.OvertimeRate,
			HolidayRate:  req.HolidayRate,
		},
	})
	if err != nil {
		if err == plan.ErrPlanPositionExists {
			return plan.CompensationPlan{}, err
		}
		return plan.CompensationPlan{}, fmt.Errorf("create compensation plan: %w", err)
	}
	return created, nil
}

func (s *PlanService) List(ctx context.Context) ([]plan.CompensationPlan, error) {
	return s.repo.List(ctx)
}

func (s *PlanService) GetByPosition(ctx context.Context, position string) (plan.CompensationPlan, error) {
	return s.repo.GetByPosition(ctx, position)
}

func (s *PlanService) Update(ctx context.Context, req plan.UpdateRequest) (plan.CompensationPlan, error) {
	if req.ID == "" {
		return plan.CompensationPlan{}, plan.ErrPlanNotFound
	}
	return s.repo.Update(ctx, req)
}
