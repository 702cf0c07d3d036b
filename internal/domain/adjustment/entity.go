package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// The three adjustment sources hold not-yet-applied per-employee
// monetary items. A row participates in at most one payroll
// finalization: once IsAlreadyAdded is set there is no un-consume path.

// Deduction is a benefit deduction (SSS, health plan, ...) withheld
// from net salary.
type Deduction struct {
	ID             string
	EmployeeID     string
	BenefitName    string
	Amount         decimal.Decimal
	IsAlreadyAdded bool
	CreatedAt      time.Time
}

type IncentiveStatus string

const (
	IncentiveStatusPending  IncentiveStatus = "Pending"
	IncentiveStatusReceived IncentiveStatus = "Received"
)

// Incentive is an award added to net salary. Status flips to Received
// with a date stamp when consumed by finalization.
type Incentive struct {
	ID             string
	EmployeeID     string
	Description    string
	Amount         decimal.Decimal
	Status         IncentiveStatus
	DateReceived   *time.Time
	IsAlreadyAdded bool
	CreatedAt      time.Time
}

// BenefitType tags an employee compensation row. The two variants have
// opposite signs in the net-salary formula.
type BenefitType string

const (
	BenefitPaidLeave  BenefitType = "paid_leave"
	BenefitDeductible BenefitType = "deductible"
)

// Compensation is an ad-hoc per-employee adjustment: paid leave credit
// or a violation deductible.
type Compensation struct {
	ID             string
	EmployeeID     string
	BenefitType    BenefitType
	Amount         decimal.Decimal
	IsAlreadyAdded bool
	CreatedAt      time.Time
}
