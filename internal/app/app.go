package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/auditlog"
	"github.com/outlay-dev/outlay/internal/config"
	"github.com/outlay-dev/outlay/internal/export"
	"github.com/outlay-dev/outlay/internal/gitops"
	"github.com/outlay-dev/outlay/internal/importer"
	"github.com/outlay-dev/outlay/internal/ledger"
	"github.com/outlay-dev/outlay/internal/model"
	"github.com/outlay-dev/outlay/internal/summary"
	"github.com/outlay-dev/outlay/internal/view"
)

// ErrUnknownFormat is returned by Import for an unregistered format.
var ErrUnknownFormat = errors.New("unknown import format")

// App owns the expense store and the view state the display layer
// reads: the month cursor, the search text, the category filter, and
// the monthly budget. There is exactly one writer; every mutating call
// persists immediately. A failed save keeps the in-memory state as the
// unsaved truth and reports the failure to the caller.
type App struct {
	home     string
	settings *config.Settings
	store    *ledger.Store
	parsers  *importer.Registry

	cursor   view.Cursor
	search   string
	category string
	budget   decimal.Decimal

	now func() time.Time
}

// New loads settings, the expense file, and the budget from home.
// When the expense file cannot be read, the returned App is still
// usable (with an empty store) and the error describes the failure.
func New(home string) (*App, error) {
	settings, err := config.Load(filepath.Join(home, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		settings = config.Default()
	} else if err != nil {
		return nil, err
	}

	a := &App{
		home:     home,
		settings: settings,
		store:    ledger.NewStore(),
		parsers:  importer.NewDefaultRegistry(),
		now:      time.Now,
	}
	a.cursor = view.CursorFor(a.now())
	a.budget = config.LoadBudget(a.budgetPath())

	if err := a.store.Load(a.expensesPath()); err != nil {
		return a, err
	}
	return a, nil
}

// Home returns the outlay home directory.
func (a *App) Home() string { return a.home }

// Settings returns the loaded settings.
func (a *App) Settings() *config.Settings { return a.settings }

func (a *App) expensesPath() string {
	return filepath.Join(a.home, a.settings.Data.ExpensesFile)
}

func (a *App) budgetPath() string {
	return filepath.Join(a.home, a.settings.Data.BudgetFile)
}

// AddExpense validates, inserts at the head of the store, and persists.
func (a *App) AddExpense(amount decimal.Decimal, category model.Category, description string, ts time.Time) (model.Expense, error) {
	e, err := a.store.Add(amount, category, description, ts)
	if err != nil {
		return model.Expense{}, err
	}
	return e, a.persist("add", fmt.Sprintf("%s %s", e.Amount.StringFixed(2), e.Category), e.ID)
}

// UpdateExpense rewrites amount, category, and description of a record.
// The timestamp is untouched; a rejected amount leaves the record as it
// was.
func (a *App) UpdateExpense(expenseID string, amount decimal.Decimal, category model.Category, description string) error {
	if err := a.store.Update(expenseID, amount, category, description); err != nil {
		return err
	}
	return a.persist("edit", fmt.Sprintf("%s %s", amount.StringFixed(2), category), expenseID)
}

// DeleteExpense removes a record. Deleting an unknown ID is a no-op.
func (a *App) DeleteExpense(expenseID string) error {
	if !a.store.Remove(expenseID) {
		return nil
	}
	return a.persist("remove", "", expenseID)
}

// ClearAll deletes every record.
func (a *App) ClearAll() error {
	count := a.store.Len()
	a.store.Clear()
	return a.persist("clear", fmt.Sprintf("%d expenses", count), "")
}

// GetExpense returns the record with the given ID.
func (a *App) GetExpense(expenseID string) (model.Expense, bool) {
	return a.store.Get(expenseID)
}

// Records returns every record, newest first.
func (a *App) Records() []model.Expense {
	return a.store.All()
}

// Budget returns the monthly budget; zero means unset.
func (a *App) Budget() decimal.Decimal { return a.budget }

// SetBudget stores and persists the monthly budget. Zero clears it;
// negative values are rejected.
func (a *App) SetBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return model.ErrInvalidAmount
	}
	a.budget = budget
	if err := config.SaveBudget(a.budgetPath(), budget); err != nil {
		return err
	}
	a.audit("budget", budget.StringFixed(2), "")
	return nil
}

// Month returns the month cursor.
func (a *App) Month() view.Cursor { return a.cursor }

// SetMonth moves the cursor by delta months.
func (a *App) SetMonth(delta int) {
	for ; delta > 0; delta-- {
		a.cursor = a.cursor.Next()
	}
	for ; delta < 0; delta++ {
		a.cursor = a.cursor.Prev()
	}
}

// SetMonthTo jumps the cursor to an absolute month.
func (a *App) SetMonthTo(year int, month time.Month) {
	a.cursor = view.Cursor{Year: year, Month: month}
}

// JumpToCurrentMonth resets the cursor to the current local month.
func (a *App) JumpToCurrentMonth() {
	a.cursor = view.CursorFor(a.now())
}

// SetSearchText sets the free-text search applied by FilteredRecords.
func (a *App) SetSearchText(s string) { a.search = s }

// SetCategoryFilter sets the category filter applied by
// FilteredRecords. Empty or "all" disables it.
func (a *App) SetCategoryFilter(c string) { a.category = c }

// CurrentMonthRecords recomputes the month view from the store.
func (a *App) CurrentMonthRecords() []model.Expense {
	return view.ForMonth(a.store.All(), a.cursor.Year, a.cursor.Month)
}

// FilteredRecords applies the search and category filter to the month
// view; this is the display list.
func (a *App) FilteredRecords() []model.Expense {
	return view.Filter(a.CurrentMonthRecords(), a.search, a.category)
}

// Dashboard is everything the summary panels render. Statistics come
// from the full month view, independent of the active search/filter.
type Dashboard struct {
	Month  view.Cursor
	Totals summary.Summary
	Budget summary.BudgetStatus
}

// Summary computes the dashboard for the viewed month.
func (a *App) Summary() Dashboard {
	totals := summary.Calculate(a.CurrentMonthRecords(), a.now())
	return Dashboard{
		Month:  a.cursor,
		Totals: totals,
		Budget: summary.Budget(totals.MonthTotal, a.budget),
	}
}

// Analytics computes overall statistics across every record.
func (a *App) Analytics() summary.Analytics {
	return summary.Analyze(a.store.All())
}

// Export writes every record to w in the export CSV format.
func (a *App) Export(w io.Writer) error {
	return export.WriteCSV(w, a.store.All())
}

// Import parses r with the named format parser and adds every record,
// then persists once. Returns how many records were added. Rows are
// added in reverse file order so the first row ends up newest.
func (a *App) Import(r io.Reader, format string) (int, error) {
	p := a.parsers.Get(format)
	if p == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	records, err := p.Parse(r)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	for i := len(records) - 1; i >= 0; i-- {
		e := records[i]
		if _, err := a.store.Add(e.Amount, e.Category, e.Description, e.Timestamp); err != nil {
			return 0, fmt.Errorf("importing record %d: %w", i+1, err)
		}
	}
	return len(records), a.persist("import", fmt.Sprintf("%d expenses (%s)", len(records), format), "")
}

// persist saves the store, records the action, and snapshots the home
// when git auto-commit is on. A save failure is returned to the caller;
// the in-memory store keeps the mutation either way.
func (a *App) persist(action, details, expenseID string) error {
	if err := a.store.Save(a.expensesPath()); err != nil {
		return err
	}
	a.audit(action, details, expenseID)

	if a.settings.Git.AutoCommit && gitops.IsRepo(a.home) {
		message := action
		if details != "" {
			message += ": " + details
		}
		if _, err := gitops.Snapshot(a.home, message, a.settings.Git.AuthorName, a.settings.Git.AuthorEmail); err != nil {
			return fmt.Errorf("git snapshot: %w", err)
		}
	}
	return nil
}

// audit appends to the activity log. Best effort: a log failure never
// fails the action it describes.
func (a *App) audit(action, details, expenseID string) {
	_ = auditlog.Append(a.home, []auditlog.Entry{{
		Timestamp: a.now(),
		Action:    action,
		Details:   details,
		ExpenseID: expenseID,
	}})
}
