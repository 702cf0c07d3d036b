package attendance

import (
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
)

// CreateRequest is the ingestion payload from the attendance-sync job.
// Durations arrive in the legacy "<hours>h <minutes>m" form.
type CreateRequest struct {
	EmployeeID    string `json:"employee_id"`
	TimeIn        string `json:"time_in,omitempty"`
	TimeOut       string `json:"time_out,omitempty"`
	TotalHours    string `json:"total_hours"`
	OvertimeHours string `json:"overtime_hours,omitempty"`
	IsHoliday     bool   `json:"is_holiday"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.TotalHours) {
		errs = append(errs, validator.ValidationError{Field: "total_hours", Message: "is required"})
	}
	if r.TimeIn != "" {
		if _, ok := validator.IsValidDateTime(r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.TimeOut != "" {
		if _, ok := validator.IsValidDateTime(r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	TimeIn          string `json:"time_in,omitempty"`
	TimeOut         string `json:"time_out,omitempty"`
	TotalHours      string `json:"total_hours"`
	OvertimeHours   string `json:"overtime_hours"`
	HolidayCount    int    `json:"holiday_count"`
	IsHoliday       bool   `json:"is_holiday"`
	BatchID         string `json:"batch_id"`
	IsFinalized     bool   `json:"is_finalized"`
	CreatedAt       string `json:"created_at"`
	WorkMinutes     int    `json:"work_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}
