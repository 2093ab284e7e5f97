package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Severity classifies budget consumption for status coloring.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Tier boundaries as percent of budget used.
const (
	warningThreshold  = 75
	criticalThreshold = 90
)

// BudgetStatus describes budget-vs-actual for the viewed month.
// PercentUsed is the raw figure and may exceed 100; BarPercent is
// clamped to [0,100] and only drives display bars.
type BudgetStatus struct {
	Set         bool
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed float64
	BarPercent  int
	Severity    Severity
	Message     string
}

// Budget computes the budget status for a month total. A monthly budget
// of zero (or less) means no budget is set.
func Budget(monthTotal, monthlyBudget decimal.Decimal) BudgetStatus {
	if !monthlyBudget.IsPositive() {
		return BudgetStatus{
			Spent:    monthTotal,
			Severity: SeverityNone,
			Message:  "No budget set",
		}
	}

	percent, _ := monthTotal.Div(monthlyBudget).Mul(decimal.NewFromInt(100)).Float64()
	st := BudgetStatus{
		Set:         true,
		Budget:      monthlyBudget,
		Spent:       monthTotal,
		Remaining:   monthlyBudget.Sub(monthTotal),
		PercentUsed: percent,
		BarPercent:  clampPercent(percent),
	}

	if st.Remaining.IsNegative() {
		st.Severity = SeverityCritical
		st.Message = fmt.Sprintf("Over budget by %s", st.Remaining.Abs().StringFixed(2))
		return st
	}

	switch {
	case percent >= criticalThreshold:
		st.Severity = SeverityCritical
	case percent >= warningThreshold:
		st.Severity = SeverityWarning
	default:
		st.Severity = SeverityNormal
	}
	st.Message = fmt.Sprintf("%s of %s remaining", st.Remaining.StringFixed(2), monthlyBudget.StringFixed(2))
	return st
}

func clampPercent(p float64) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return int(p)
	}
}
