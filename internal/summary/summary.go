package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// CategoryTotal aggregates one category.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
	Percent  float64 // share of the aggregate total
}

// Summary holds the month-scoped totals the dashboard shows. Week
// totals run Monday through today inclusive.
type Summary struct {
	MonthTotal decimal.Decimal
	TodayTotal decimal.Decimal
	WeekTotal  decimal.Decimal
	Categories []CategoryTotal // sorted by total, descending
	Count      int
}

// Calculate computes a Summary from a month view. The caller supplies
// today so tests can pin the clock.
func Calculate(view []model.Expense, today time.Time) Summary {
	s := Summary{
		MonthTotal: decimal.Zero,
		TodayTotal: decimal.Zero,
		WeekTotal:  decimal.Zero,
		Count:      len(view),
	}

	dayStart := localDate(today)
	weekStart := dayStart.AddDate(0, 0, -mondayOffset(dayStart))

	for _, e := range view {
		s.MonthTotal = s.MonthTotal.Add(e.Amount)

		day := localDate(e.Timestamp)
		if day.Equal(dayStart) {
			s.TodayTotal = s.TodayTotal.Add(e.Amount)
		}
		if !day.Before(weekStart) && !day.After(dayStart) {
			s.WeekTotal = s.WeekTotal.Add(e.Amount)
		}
	}

	s.Categories = categoryTotals(view, s.MonthTotal)
	return s
}

// localDate truncates t to its local calendar date.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// mondayOffset returns how many days t is past the most recent Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func categoryTotals(records []model.Expense, total decimal.Decimal) []CategoryTotal {
	totals := make(map[model.Category]*CategoryTotal)
	var order []model.Category
	for _, e := range records {
		ct, ok := totals[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Total: decimal.Zero}
			totals[e.Category] = ct
			order = append(order, e.Category)
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(order))
	hundred := decimal.NewFromInt(100)
	for _, c := range order {
		ct := *totals[c]
		if total.IsPositive() {
			ct.Percent, _ = ct.Total.Div(total).Mul(hundred).Float64()
		}
		out = append(out, ct)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
