package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.Repository {
	return &adjustmentRepository{db: db}
}

// ========== CREATE ==========

func (r *adjustmentRepository) CreateDeduction(ctx context.Context, d adjustment.Deduction) (adjustment.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	var created adjustment.Deduction
	err := q.QueryRow(ctx, `
		INSERT INTO benefit_deductions (employee_id, benefit_name, amount, is_already_added)
		VALUES ($1, $2, $3, false)
		RETURNING id, employee_id, benefit_name, amount, is_already_added, created_at
	`, d.EmployeeID, d.BenefitName, d.Amount).Scan(
		&created.ID, &created.EmployeeID, &created.BenefitName,
		&created.Amount, &created.IsAlreadyAdded, &created.CreatedAt,
	)
	if err != nil {
		return adjustment.Deduction{}, fmt.Errorf("failed to create benefit deduction: %w", err)
	}

	return created, nil
}

func (r *adjustmentRepository) CreateIncentive(ctx context.Context, i adjustment.Incentive) (adjustment.Incentive, error) {
	q := GetQuerier(ctx, r.db)

	var created adjustment.Incentive
	err := q.QueryRow(ctx, `
		INSERT INTO incentive_trackings (employee_id, description, amount, status, is_already_added)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, employee_id, description, amount, status, date_received, is_already_added, created_at
	`, i.EmployeeID, i.Description, i.Amount, adjustment.IncentiveStatusPending).Scan(
		&created.ID, &created.EmployeeID, &created.Description, &created.Amount,
		&created.Status, &created.DateReceived, &created.IsAlreadyAdded, &created.CreatedAt,
	)
	if err != nil {
		return adjustment.Incentive{}, fmt.Errorf("failed to create incentive: %w", err)
	}

	return created, nil
}

func (r *adjustmentRepository) CreateCompensation(ctx context.Context, c adjustment.Compensation) (adjustment.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	var created adjustment.Compensation
	err := q.QueryRow(ctx, `
		INSERT INTO employee_compensations (employee_id, benefit_type, amount, is_already_added)
		VALUES ($1, $2, $3, false)
		RETURNING id, employee_id, benefit_type, amount, is_already_added, created_at
	`, c.EmployeeID, c.BenefitType, c.Amount).Scan(
		&created.ID, &created.EmployeeID, &created.BenefitType,
		&created.Amount, &created.IsAlreadyAdded, &created.CreatedAt,
	)
	if err != nil {
		return adjustment.Compensation{}, fmt.Errorf("failed to create employee compensation: %w", err)
	}

	return created, nil
}

// ========== LIST ==========

func (r *adjustmentRepository) ListDeductions(ctx context.Context, unconsumedOnly bool) ([]adjustment.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, benefit_name, amount, is_already_added, created_at
		FROM benefit_deductions
	`
	if unconsumedOnly {
		query += " WHERE is_already_added = false"
	}
	query += " ORDER BY created_at"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit deductions: %w", err)
	}
	defer rows.Close()

	var deductions []adjustment.Deduction
	for rows.Next() {
		var d adjustment.Deduction
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.BenefitName, &d.Amount, &d.IsAlreadyAdded, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan benefit deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, nil
}

func (r *adjustmentRepository) ListIncentives(ctx context.Context, unconsumedOnly bool) ([]adjustment.Incentive, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, description, amount, status, date_received, is_already_added, created_at
		FROM incentive_trackings
	`
	if unconsumedOnly {
		query += " WHERE is_already_added = false"
	}
	query += " ORDER BY created_at"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentives: %w", err)
	}
	defer rows.Close()

	var incentives []adjustment.Incentive
	for rows.Next() {
		var i adjustment.Incentive
		if err := rows.Scan(&i.ID, &i.EmployeeID, &i.Description, &i.Amount, &i.Status, &i.DateReceived, &i.IsAlreadyAdded, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan incentive: %w", err)
		}
		incentives = append(incentives, i)
	}

	return incentives, nil
}

func (r *adjustmentRepository) ListCompensations(ctx context.Context, unconsumedOnly bool) ([]adjustment.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, benefit_type, amount, is_already_added, created_at
		FROM employee_compensations
	`
	if unconsumedOnly {
		query += " WHERE is_already_added = false"
	}
	query += " ORDER BY created_at"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee compensations: %w", err)
	}
	defer rows.Close()

	var compensations []adjustment.Compensation
	for rows.Next() {
		var c adjustment.Compensation
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.BenefitType, &c.Amount, &c.IsAlreadyAdded, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee compensation: %w", err)
		}
		compensations = append(compensations, c)
	}

	return compensations, nil
}

// ========== CONSUMPTION ==========

func (r *adjustmentRepository) MarkDeductionsConsumed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE benefit_deductions
		SET is_already_added = true
		WHERE id = ANY($1) AND is_already_added = false
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark deductions consumed: %w", err)
	}
	return nil
}

func (r *adjustmentRepository) MarkIncentivesReceived(ctx context.Context, ids []string, receivedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE incentive_trackings
		SET is_already_added = true, status = $2, date_received = $3
		WHERE id = ANY($1) AND is_already_added = false
	`, ids, adjustment.IncentiveStatusReceived, receivedAt)
	if err != nil {
		return fmt.Errorf("failed to mark incentives received: %w", err)
	}
	return nil
}

func (r *adjustmentRepository) MarkCompensationsConsumed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE employee_compensations
		SET is_already_added = true
		WHERE id = ANY($1) AND is_already_added = false
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to mark compensations consumed: %w", err)
	}
	return nil
}
