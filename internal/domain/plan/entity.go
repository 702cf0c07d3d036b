package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rates is the pay-rate triple resolved per position. HolidayRate is a
// multiplier applied to holiday work hours, not a fixed sum.
type Rates struct {
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
}

// DefaultRates applies when a position has no compensation plan.
func DefaultRates() Rates {
	return Rates{
		HourlyRate:   decimal.NewFromInt(110),
		OvertimeRate: decimal.NewFromInt(75),
		HolidayRate:  decimal.NewFromInt(3),
	}
}

// CompensationPlan maps a canonical position name to its pay rates.
// The position key is a plain position-name string; it is not a user
// reference.
type CompensationPlan struct {
	ID        string
	Position  string
	Rates     Rates
	CreatedAt time.Time
	UpdatedAt time.Time
}
