package summary

import (
	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// Analytics summarizes the entire store, independent of the month being
// viewed.
type Analytics struct {
	Total      decimal.Decimal
	Count      int
	Average    decimal.Decimal // rounded to two decimals
	Largest    model.Expense
	Categories []CategoryTotal // sorted by total, descending
}

// Analyze computes overall statistics across every record.
func Analyze(records []model.Expense) Analytics {
	a := Analytics{
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Count:   len(records),
	}
	if len(records) == 0 {
		return a
	}

	for _, e := range records {
		a.Total = a.Total.Add(e.Amount)
		if e.Amount.GreaterThan(a.Largest.Amount) {
			a.Largest = e
		}
	}
	a.Average = a.Total.DivRound(decimal.NewFromInt(int64(len(records))), 2)
	a.Categories = categoryTotals(records, a.Total)
	return a
}
