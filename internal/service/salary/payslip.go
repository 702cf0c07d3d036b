package salary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipPDF renders the finalized payslip of one employee in one batch
// as an A4 PDF.
func (s *SalaryService) PayslipPDF(ctx context.Context, batchID, employeeID string) ([]byte, error) {
	h, err := s.historyRepo.GetByBatchAndEmployee(ctx, batchID, employeeID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(60, 8, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}
	money := func(d decimal.Decimal) string { return d.StringFixed(2) }

	line("Employee", h.Name)
	line("Position", h.Position)
	line("Batch", h.BatchID)
	line("Payroll Date", h.PayrollDate.Format("January 2, 2006"))
	pdf.Ln(4)

	line("Work Hours", h.TotalWorkHours.StringFixed(2))
	line("Overtime Hours", h.TotalOvertimeHours.StringFixed(2))
	line("Days Worked", fmt.Sprintf("%d", h.DaysWorked()))
	pdf.Ln(4)

	line("Gross Salary", money(h.GrossSalary))
	line("Incentives", money(h.IncentiveAmount))
	line("Paid Leave", money(h.PaidLeaveAmount))
	line("Benefit Deductions", "-"+money(h.BenefitsDeductionsAmount))
	line("Deductibles", "-"+money(h.DeductibleAmount))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(60, 10, "Net Salary")
	pdf.Cell(0, 10, money(h.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip for %s: %w", employeeID, err)
	}

	return buf.Bytes(), nil
}

var _ payroll.Service = (*SalaryService)(nil)
