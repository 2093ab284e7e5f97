package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/id"
	"github.com/outlay-dev/outlay/internal/model"
)

// ErrNotFound is returned when a keyed mutation names no known record.
var ErrNotFound = errors.New("no such expense")

// PersistenceError reports a load or save I/O failure. The in-memory
// store is never corrupted by one; after a failed save the store holds
// the unsaved true state until the next successful save.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the single source of truth for expense records, ordered
// newest first. It assigns each record a surrogate ID at creation and
// load time, so mutations are keyed rather than positional. IDs are
// session-scoped and never persisted.
type Store struct {
	records []model.Expense
	nextSeq int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextSeq: 1}
}

// All returns the records, newest first. Callers must not mutate the
// returned slice.
func (s *Store) All() []model.Expense {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with the given ID.
func (s *Store) Get(expenseID string) (model.Expense, bool) {
	for _, e := range s.records {
		if e.ID == expenseID {
			return e, true
		}
	}
	return model.Expense{}, false
}

// Add validates the input, assigns an ID, and inserts the record at the
// head of the sequence. A zero timestamp means "now".
func (s *Store) Add(amount decimal.Decimal, category model.Category, description string, ts time.Time) (model.Expense, error) {
	e, err := model.NewExpense(amount, category, description, ts)
	if err != nil {
		return model.Expense{}, err
	}
	e.ID = id.FormatExpenseID(s.nextSeq)
	s.nextSeq++

	s.records = append([]model.Expense{e}, s.records...)
	return e, nil
}

// Update rewrites amount, category, and description of the record with
// the given ID. The timestamp is never touched by an edit. On a
// validation failure the record is left unchanged.
func (s *Store) Update(expenseID string, amount decimal.Decimal, category model.Category, description string) error {
	for i := range s.records {
		if s.records[i].ID != expenseID {
			continue
		}
		if !amount.IsPositive() {
			return model.ErrInvalidAmount
		}
		if !model.ValidCategory(category) {
			return fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
		}
		s.records[i].Amount = amount
		s.records[i].Category = category
		s.records[i].Description = model.NormalizeDescription(description)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, expenseID)
}

// Remove deletes the record with the given ID and reports whether a
// record was removed. Removing an unknown ID is a no-op.
func (s *Store) Remove(expenseID string) bool {
	for i := range s.records {
		if s.records[i].ID == expenseID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the store unconditionally.
func (s *Store) Clear() {
	s.records = nil
}

// Load replaces the store contents with the file at path. A missing
// file means an empty store, not an error. Malformed lines are skipped
// silently. On an I/O failure the previous contents are kept.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.records = nil
		s.nextSeq = 1
		return nil
	}
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}

	s.records = records
	s.nextSeq = 1
	for i := range s.records {
		s.records[i].ID = id.FormatExpenseID(s.nextSeq)
		s.nextSeq++
	}
	return nil
}

// Save writes every record to path, one line each, as a full rewrite.
// Parent directories are created as needed.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	if err := WriteRecords(f, s.records); err != nil {
		f.Close()
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}
