package plan

import (
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Position     string          `json:"position"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be non-negative"})
	}
	if r.HolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "holiday_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID           string
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	HolidayRate  *decimal.Decimal `json:"holiday_rate,omitempty"`
}

type Response struct {
	ID           string          `json:"id"`
	Position     string          `json:"position"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
}
