package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

const (
	delimiter = ","
	numFields = 4
	colAmount = 0
	colCat    = 1
	colDesc   = 2
	colMillis = 3
)

// EncodeLine renders one expense as a persisted line:
//
//	amount,category,description,epoch-millis
//
// The amount keeps full precision; the description is written raw. A
// description containing the delimiter will not survive a reload (the
// line splits into too many fields and is skipped as malformed). That
// is the original file contract, kept as-is; the export format is the
// one with proper escaping.
func EncodeLine(e model.Expense) string {
	return strings.Join([]string{
		e.Amount.String(),
		string(e.Category),
		e.Description,
		strconv.FormatInt(e.Timestamp.UnixMilli(), 10),
	}, delimiter)
}

// DecodeLine parses one persisted line. Callers treat an error as "skip
// this line", never as a fatal load failure.
func DecodeLine(line string) (model.Expense, error) {
	parts := strings.Split(line, delimiter)
	if len(parts) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(parts))
	}

	amount, err := decimal.NewFromString(parts[colAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", parts[colAmount], err)
	}
	if !amount.IsPositive() {
		return model.Expense{}, fmt.Errorf("amount %q: %w", parts[colAmount], model.ErrInvalidAmount)
	}

	category := model.Category(parts[colCat])
	if !model.ValidCategory(category) {
		return model.Expense{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, parts[colCat])
	}

	millis, err := strconv.ParseInt(parts[colMillis], 10, 64)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing timestamp %q: %w", parts[colMillis], err)
	}

	return model.Expense{
		Amount:      amount,
		Category:    category,
		Description: model.NormalizeDescription(parts[colDesc]),
		Timestamp:   time.UnixMilli(millis),
	}, nil
}

// ReadRecords reads every line from r, decoding each as an expense.
// Malformed lines are dropped silently; only a read failure is an error.
func ReadRecords(r io.Reader) ([]model.Expense, error) {
	var records []model.Expense
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := DecodeLine(line)
		if err != nil {
			continue
		}
		records = append(records, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	return records, nil
}

// WriteRecords writes every record to w, one line each, in order.
func WriteRecords(w io.Writer, records []model.Expense) error {
	for i, e := range records {
		if _, err := fmt.Fprintln(w, EncodeLine(e)); err != nil {
			return fmt.Errorf("writing line %d: %w", i+1, err)
		}
	}
	return nil
}
