package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// CSVParser reads the export CSV format back in, so exported data can
// be re-imported. Unlike the persistence loader, a bad row here is an
// error: imports are explicit user actions and deserve a row number.
type CSVParser struct{}

const (
	csvDateFormat = "2006-01-02 15:04:05"
	csvNumFields  = 4
	csvColDate    = 0
	csvColCat     = 1
	csvColDesc    = 2
	csvColAmount  = 3
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads an export-format CSV and returns expense records in file
// order. A header row is recognized and skipped.
func (p *CSVParser) Parse(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}

	if len(records) > 0 && records[0][csvColDate] == "Date" {
		records = records[1:]
	}

	var out []model.Expense
	for i, rec := range records {
		e, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func parseCSVRow(rec []string) (model.Expense, error) {
	ts, err := time.ParseInLocation(csvDateFormat, rec[csvColDate], time.Local)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", rec[csvColDate], err)
	}

	category, err := model.ParseCategory(rec[csvColCat])
	if err != nil {
		return model.Expense{}, err
	}

	amount, err := decimal.NewFromString(rec[csvColAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", rec[csvColAmount], err)
	}

	return model.NewExpense(amount, category, rec[csvColDesc], ts)
}
