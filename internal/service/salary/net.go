package salary

import (
	"context"
	"fmt"
	"sort"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// employeeAdjustments collects one employee's unconsumed adjustment rows
// across the three sources.
type employeeAdjustments struct {
	deductions  []payroll.AdjustmentItem
	incentives  []payroll.AdjustmentItem
	paidLeaves  []payroll.AdjustmentItem
	deductibles []payroll.AdjustmentItem
}

func (a *employeeAdjustments) empty() bool {
	return len(a.deductions) == 0 && len(a.incentives) == 0 &&
		len(a.paidLeaves) == 0 && len(a.deductibles) == 0
}

func sumItems(items []payroll.AdjustmentItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

func (s *SalaryService) CalculateNet(ctx context.Context) ([]payroll.NetBatch, error) {
	gross, err := s.CalculateGross(ctx)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.loadAdjustments(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.directory.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}

	return buildNetBatches(gross, adjustments, rosterIndex(accounts)), nil
}

// loadAdjustments reads the unconsumed rows of all three adjustment
// sources and groups them per employee.
func (s *SalaryService) loadAdjustments(ctx context.Context) (map[string]*employeeAdjustments, error) {
	deductions, err := s.adjustmentRepo.ListDeductions(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list benefit deductions: %w", err)
	}
	incentives, err := s.adjustmentRepo.ListIncentives(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list incentives: %w", err)
	}
	compensations, err := s.adjustmentRepo.ListCompensations(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list employee compensations: %w", err)
	}

	return aggregateAdjustments(deductions, incentives, compensations), nil
}

func aggregateAdjustments(
	deductions []adjustment.Deduction,
	incentives []adjustment.Incentive,
	compensations []adjustment.Compensation,
) map[string]*employeeAdjustments {
	byEmployee := make(map[string]*employeeAdjustments)

	get := func(employeeID string) *employeeAdjustments {
		adj, ok := byEmployee[employeeID]
		if !ok {
			adj = &employeeAdjustments{}
			byEmployee[employeeID] = adj
		}
		return adj
	}

	for _, d := range deductions {
		adj := get(d.EmployeeID)
		adj.deductions = append(adj.deductions, payroll.AdjustmentItem{
			ID: d.ID, Label: d.BenefitName, Amount: d.Amount, CreatedAt: d.CreatedAt,
		})
	}
	for _, i := range incentives {
		adj := get(i.EmployeeID)
		adj.incentives = append(adj.incentives, payroll.AdjustmentItem{
			ID: i.ID, Label: i.Description, Amount: i.Amount, CreatedAt: i.CreatedAt,
		})
	}
	for _, c := range compensations {
		adj := get(c.EmployeeID)
		item := payroll.AdjustmentItem{ID: c.ID, Amount: c.Amount, CreatedAt: c.CreatedAt}
		switch c.BenefitType {
		case adjustment.BenefitDeductible:
			adj.deductibles = append(adj.deductibles, item)
		default:
			adj.paidLeaves = append(adj.paidLeaves, item)
		}
	}

	return byEmployee
}

// applyAdjustments composes an employee's net salary from their gross
// projection and adjustment rows:
//
//	net = gross + incentives + paid leave - deductions - deductible
func applyAdjustments(gross payroll.EmployeeGross, adj *employeeAdjustments) payroll.EmployeeNet {
	net := payroll.EmployeeNet{EmployeeGross: gross}
	if adj != nil {
		net.DeductionItems = adj.deductions
		net.IncentiveItems = adj.incentives
		net.PaidLeaveItems = adj.paidLeaves
		net.DeductibleItems = adj.deductibles
	}

	net.BenefitsDeductionsAmount = sumItems(net.DeductionItems)
	net.IncentiveAmount = sumItems(net.IncentiveItems)
	net.PaidLeaveAmount = sumItems(net.PaidLeaveItems)
	net.DeductibleAmount = sumItems(net.DeductibleItems)

	net.NetSalary = gross.GrossSalary.
		Add(net.IncentiveAmount).
		Add(net.PaidLeaveAmount).
		Sub(net.BenefitsDeductionsAmount).
		Sub(net.DeductibleAmount).
		Round(2)

	return net
}

// buildNetBatches joins the gross projection with per-employee
// adjustments. An employee's adjustments are applied in the first batch
// the employee appears in. When no open attendance exists at all but
// unconsumed adjustments do, a single pseudo-batch is synthesized with
// one zero-hours row per adjusted employee.
func buildNetBatches(
	gross []payroll.GrossBatch,
	adjustments map[string]*employeeAdjustments,
	roster map[string]account.Account,
) []payroll.NetBatch {
	if len(gross) == 0 {
		return buildPseudoBatch(adjustments, roster)
	}

	applied := make(map[string]bool, len(adjustments))

	result := make([]payroll.NetBatch, 0, len(gross))
	for _, gb := range gross {
		nb := payroll.NetBatch{BatchID: gb.BatchID, Employees: make([]payroll.EmployeeNet, 0, len(gb.Employees))}
		for _, emp := range gb.Employees {
			var adj *employeeAdjustments
			if !applied[emp.EmployeeID] {
				adj = adjustments[emp.EmployeeID]
				applied[emp.EmployeeID] = true
			}
			net := applyAdjustments(emp, adj)
			nb.TotalNetSalary = nb.TotalNetSalary.Add(net.NetSalary)
			nb.Employees = append(nb.Employees, net)
		}
		result = append(result, nb)
	}

	return result
}

func buildPseudoBatch(adjustments map[string]*employeeAdjustments, roster map[string]account.Account) []payroll.NetBatch {
	var employeeIDs []string
	for employeeID, adj := range adjustments {
		if !adj.empty() {
			employeeIDs = append(employeeIDs, employeeID)
		}
	}
	if len(employeeIDs) == 0 {
		return []payroll.NetBatch{}
	}
	sort.Strings(employeeIDs)

	pseudo := payroll.NetBatch{BatchID: payroll.PseudoBatchID}
	for _, employeeID := range employeeIDs {
		gross := payroll.EmployeeGross{EmployeeID: employeeID}
		if acct, ok := roster[employeeID]; ok {
			gross.Name = acct.FullName()
			gross.Position = acct.Position
		}
		net := applyAdjustments(gross, adjustments[employeeID])
		pseudo.TotalNetSalary = pseudo.TotalNetSalary.Add(net.NetSalary)
		pseudo.Employees = append(pseudo.Employees, net)
	}

	return []payroll.NetBatch{pseudo}
}
