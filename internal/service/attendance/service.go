// Package attendance ingests the time-tracking feed: duration strings
// are parsed to minutes once, the roster fills in name and position, and
// every row is stamped with the currently open batch.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/batch"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/duration"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
)

type AttendanceService struct {
	attendanceRepo attendance.Repository
	batchRepo      batch.Repository
	directory      account.Directory

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	batchRepo batch.Repository,
	directory account.Directory,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		batchRepo:      batchRepo,
		directory:      directory,
		now:            time.Now,
	}
}

// Ingest records one attendance row under the active batch, creating the
// batch when none is open.
func (s *AttendanceService) Ingest(ctx context.Context, req attendance.CreateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	now := s.now()

	active, err := s.batchRepo.GetOrCreateActive(ctx, batch.NewBatchID(now), now.Add(batch.Window))
	if err != nil {
		return attendance.Response{}, fmt.Errorf("resolve active batch: %w", err)
	}

	record := attendance.Record{
		EmployeeID:      req.EmployeeID,
		WorkMinutes:     duration.ParseMinutes(req.TotalHours),
		OvertimeMinutes: duration.ParseMinutes(req.OvertimeHours),
		IsHoliday:       req.IsHoliday,
		BatchID:         active.BatchID,
	}
	if req.IsHoliday {
		record.HolidayCount = 1
	}
	if req.TimeIn != "" {
		if t, ok := validator.IsValidDateTime(req.TimeIn); ok {
			record.TimeIn = &t
		}
	}
	if req.TimeOut != "" {
		if t, ok := validator.IsValidDateTime(req.TimeOut); ok {
			record.TimeOut = &t
		}
	}

	if accounts, err := s.directory.ListAccounts(ctx); err == nil {
		for _, a := range accounts {
			if a.ID == req.EmployeeID {
				record.Name = a.FullName()
				record.Position = a.Position
				break
			}
		}
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("create attendance record: %w", err)
	}

	return toResponse(created), nil
}

// ListOpen returns the rows of the current pay period.
func (s *AttendanceService) ListOpen(ctx context.Context) ([]attendance.Response, error) {
	records, err := s.attendanceRepo.ListUnfinalized(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unfinalized attendance: %w", err)
	}

	responses := make([]attendance.Response, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

func (s *AttendanceService) ListByBatch(ctx context.Context, batchID string) ([]attendance.Response, error) {
	records, err := s.attendanceRepo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by batch: %w", err)
	}

	responses := make([]attendance.Response, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

func toResponse(r attendance.Record) attendance.Response {
	resp := attendance.Response{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Name:            r.Name,
		Position:        r.Position,
		TotalHours:      duration.Format(r.WorkMinutes),
		OvertimeHours:   duration.Format(r.OvertimeMinutes),
		HolidayCount:    r.HolidayCount,
		IsHoliday:       r.IsHoliday,
		BatchID:         r.BatchID,
		IsFinalized:     r.IsFinalized,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		WorkMinutes:     r.WorkMinutes,
		OvertimeMinutes: r.OvertimeMinutes,
	}
	if r.TimeIn != nil {
		resp.TimeIn = r.TimeIn.Format(time.RFC3339)
	}
	if r.TimeOut != nil {
		resp.TimeOut = r.TimeOut.Format(time.RFC3339)
	}
	return resp
}
