package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type planRepository struct {
	db *database.DB
}

func NewPlanRepository(db *database.DB) plan.Repository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, p plan.CompensationPlan) (plan.CompensationPlan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_plans (position, hourly_rate, overtime_rate, holiday_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, position, hourly_rate, overtime_rate, holiday_rate, created_at, updated_at
	`

	var created plan.CompensationPlan
	err := q.QueryRow(ctx, query,
		p.Position, p.Rates.HourlyRate, p.Rates.OvertimeRate, p.Rates.HolidayRate,
	).Scan(
		&created.ID, &created.Position,
		&created.Rates.HourlyRate, &created.Rates.OvertimeRate, &created.Rates.HolidayRate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_compensation_plan_position") {
			return plan.CompensationPlan{}, plan.ErrPlanPositionExists
		}
		return plan.CompensationPlan{}, fmt.Errorf("failed to create compensation plan: %w", err)
	}

	return created, nil
}

func (r *planRepository) List(ctx context.Context) ([]plan.CompensationPlan, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, position, hourly_rate, overtime_rate, holiday_rate, created_at, updated_at
		FROM compensation_plans
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation plans: %w", err)
	}
	defer rows.Close()

	var plans []plan.CompensationPlan
	for rows.Next() {
		var p plan.CompensationPlan
		if err := rows.Scan(
			&p.ID, &p.Position,
			&p.Rates.HourlyRate, &p.Rates.OvertimeRate, &p.Rates.HolidayRate,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compensation plan: %w", err)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (r *planRepository) GetByPosition(ctx context.Context, position string) (plan.CompensationPlan, error) {
	q := GetQuerier(ctx, r.db)

	var p plan.CompensationPlan
	err := q.QueryRow(ctx, `
		SELECT id, position, hourly_rate, overtime_rate, holiday_rate, created_at, updated_at
		FROM compensation_plans
		WHERE position = $1
	`, position).Scan(
		&p.ID, &p.Position,
		&p.Rates.HourlyRate, &p.Rates.OvertimeRate, &p.Rates.HolidayRate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return plan.CompensationPlan{}, plan.ErrPlanNotFound
		}
		return plan.CompensationPlan{}, fmt.Errorf("failed to get compensation plan: %w", err)
	}

	return p, nil
}

func (r *planRepository) Update(ctx context.Context, req plan.UpdateRequest) (plan.CompensationPlan, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.HourlyRate != nil {
		setParts = append(setParts, fmt.Sprintf("hourly_rate = $%d", argIdx))
		args = append(args, *req.HourlyRate)
		argIdx++
	}
	if req.OvertimeRate != nil {
		setParts = append(setParts, fmt.Sprintf("overtime_rate = $%d", argIdx))
		args = append(args, *req.OvertimeRate)
		argIdx++
	}
	if req.HolidayRate != nil {
		setParts = append(setParts, fmt.Sprintf("holiday_rate = $%d", argIdx))
		args = append(args, *req.HolidayRate)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE compensation_plans
		SET %s
		WHERE id = $1
		RETURNING id, position, hourly_rate, overtime_rate, holiday_rate, created_at, updated_at
	`, strings.Join(setParts, ", "))

	var p plan.CompensationPlan
	err := q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Position,
		&p.Rates.HourlyRate, &p.Rates.OvertimeRate, &p.Rates.HolidayRate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return plan.CompensationPlan{}, plan.ErrPlanNotFound
		}
		return plan.CompensationPlan{}, fmt.Errorf("failed to update compensation plan: %w", err)
	}

	return p, nil
}
