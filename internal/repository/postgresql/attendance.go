package postgresql

import (
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, name, position, time_in, time_out,
	work_minutes, overtime_minutes, holiday_count, is_holiday, batch_id, is_finalized, created_at`

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, name, position, time_in, time_out,
			work_minutes, overtime_minutes, holiday_count, is_holiday, batch_id, is_finalized
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)
		RETURNING ` + attendanceColumns

	var rec attendance.Record
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Name, record.Position, record.TimeIn, record.TimeOut,
		record.WorkMinutes, record.OvertimeMinutes, record.HolidayCount, record.IsHoliday, record.BatchID,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Position, &rec.TimeIn, &rec.TimeOut,
		&rec.WorkMinutes, &rec.OvertimeMinutes, &rec.HolidayCount, &rec.IsHoliday,
		&rec.BatchID, &rec.IsFinalized, &rec.CreatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) ListUnfinalized(ctx context.Context) ([]attendance.Record, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE is_finalized = false
		ORDER BY created_at
	`, attendanceColumns)

	return r.list(ctx, query)
}

func (r *attendanceRepository) ListByBatch(ctx context.Context, batchID string) ([]attendance.Record, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE batch_id = $1
		ORDER BY created_at
	`, attendanceColumns)

	return r.list(ctx, query, batchID)
}

func (r *attendanceRepository) FinalizeBatch(ctx context.Context, oldBatchID, newBatchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Finalized rows keep a pointer to the new batch so they drop out of
	// gross-salary queries but remain reachable from the current window.
	tag, err := q.Exec(ctx, `
		UPDATE attendance_records
		SET is_finalized = true, batch_id = $2
		WHERE batch_id = $1 AND is_finalized = false
	`, oldBatchID, newBatchID)
	if err != nil {
		return 0, fmt.Errorf("failed to finalize attendance batch: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Position, &rec.TimeIn, &rec.TimeOut,
			&rec.WorkMinutes, &rec.OvertimeMinutes, &rec.HolidayCount, &rec.IsHoliday,
			&rec.BatchID, &rec.IsFinalized, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
