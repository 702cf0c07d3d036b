package adjustment

import (
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeductionRequest struct {
	EmployeeID  string          `json:"employee_id"`
	BenefitName string          `json:"benefit_name"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateIncentiveRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *CreateIncentiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCompensationRequest struct {
	EmployeeID  string          `json:"employee_id"`
	BenefitType string          `json:"benefit_type"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *CreateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BenefitType != string(BenefitPaidLeave) && r.BenefitType != string(BenefitDeductible) {
		errs = append(errs, validator.ValidationError{Field: "benefit_type", Message: "must be 'paid_leave' or 'deductible'"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
