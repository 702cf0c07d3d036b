package batch

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Window is how long a batch stays open for attendance grouping.
const Window = 15 * 24 * time.Hour

// Batch is the rolling grouping window for attendance and payroll rows.
// At most one batch is active at a time; the active row is replaced when
// a payroll finalization rotates the id.
type Batch struct {
	ID                 string
	BatchID            string
	ExpirationDate     time.Time
	TotalPayrollAmount decimal.Decimal
	IsActive           bool
	CreatedAt          time.Time
}

// NewBatchID derives the wire-format batch identifier from a timestamp,
// e.g. "batch-1717171717171".
func NewBatchID(now time.Time) string {
	return fmt.Sprintf("batch-%d", now.UnixMilli())
}
