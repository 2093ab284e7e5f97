package view

import (
	"fmt"
	"time"

	"github.com/outlay-dev/outlay/internal/model"
)

// ForMonth returns the records whose timestamp's local calendar date
// falls in the given year and month. Order is preserved (newest first).
// The result is recomputed from scratch on every call; nothing is
// cached across store mutations.
func ForMonth(records []model.Expense, year int, month time.Month) []model.Expense {
	var out []model.Expense
	for _, e := range records {
		y, m, _ := e.Timestamp.Date()
		if y == year && m == month {
			out = append(out, e)
		}
	}
	return out
}

// Cursor is the calendar month the user is looking at.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the cursor for t's local month.
func CursorFor(t time.Time) Cursor {
	y, m, _ := t.Date()
	return Cursor{Year: y, Month: m}
}

// Prev steps the cursor back one month.
func (c Cursor) Prev() Cursor {
	return c.shift(-1)
}

// Next steps the cursor forward one month.
func (c Cursor) Next() Cursor {
	return c.shift(1)
}

func (c Cursor) shift(months int) Cursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Label renders the cursor like "June 2024".
func (c Cursor) Label() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}
