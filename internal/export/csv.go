package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/outlay-dev/outlay/internal/model"
)

// ErrNoRecords is returned when there is nothing to export.
var ErrNoRecords = errors.New("no expenses to export")

// Header is the export CSV header row.
var Header = []string{"Date", "Category", "Description", "Amount"}

// DateFormat is the timestamp layout used in exported rows.
const DateFormat = "2006-01-02 15:04:05"

// WriteCSV writes records in the export format: quoted fields where
// needed, two-decimal amounts. This is deliberately distinct from the
// persistence format, which does no escaping.
func WriteCSV(w io.Writer, records []model.Expense) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range records {
		row := []string{
			e.Timestamp.Format(DateFormat),
			string(e.Category),
			e.Description,
			e.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// FileName returns the default export file name for a day, like
// "expenses_2024-06-15.csv".
func FileName(t time.Time) string {
	return "expenses_" + t.Format("2006-01-02") + ".csv"
}
