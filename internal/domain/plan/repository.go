package plan

import "context"

type Repository interface {
	Create(ctx context.Context, p CompensationPlan) (CompensationPlan, error)
	List(ctx context.Context) ([]CompensationPlan, error)
	GetByPosition(ctx context.Context, position string) (CompensationPlan, error)
	Update(ctx context.Context, req UpdateRequest) (CompensationPlan, error)
}
