package attendance

import (
	"time"
)

// Record is one open attendance row per employee per pay period.
// Work and overtime durations are stored as integer minutes; the legacy
// "8h 30m" strings from the time-tracking feed are parsed once at the
// ingestion endpoint and never stored.
type Record struct {
	ID              string
	EmployeeID      string
	Name            string
	Position        string
	TimeIn          *time.Time
	TimeOut         *time.Time
	WorkMinutes     int
	OvertimeMinutes int
	HolidayCount    int
	IsHoliday       bool
	BatchID         string
	IsFinalized     bool
	CreatedAt       time.Time
}
