package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 12, 0, 0, 0, time.Local)
}

func TestAdd_InsertsAtHead(t *testing.T) {
	s := NewStore()

	first, err := s.Add(dec("10"), model.CategoryFood, "first", date(2024, 6, 1))
	require.NoError(t, err)
	second, err := s.Add(dec("20"), model.CategoryBills, "second", date(2024, 6, 2))
	require.NoError(t, err)

	records := s.All()
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "newest record first")
	assert.Equal(t, first.ID, records[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAdd_RejectsInvalidAmount(t *testing.T) {
	s := NewStore()
	_, err := s.Add(dec("-1"), model.CategoryFood, "bad", time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Zero(t, s.Len())
}

func TestAddThenRemove_RestoresSequence(t *testing.T) {
	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "keep one", date(2024, 6, 1))
	require.NoError(t, err)
	_, err = s.Add(dec("20"), model.CategoryBills, "keep two", date(2024, 6, 2))
	require.NoError(t, err)

	before := make([]model.Expense, len(s.All()))
	copy(before, s.All())

	e, err := s.Add(dec("30"), model.CategoryTravel, "transient", date(2024, 6, 3))
	require.NoError(t, err)
	assert.True(t, s.Remove(e.ID))

	assert.Equal(t, before, s.All(), "content and order restored exactly")
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "x", time.Now())
	require.NoError(t, err)

	assert.False(t, s.Remove("exp-999999"))
	assert.Equal(t, 1, s.Len())
}

func TestUpdate(t *testing.T) {
	s := NewStore()
	ts := date(2024, 6, 1)
	e, err := s.Add(dec("10"), model.CategoryFood, "lunch", ts)
	require.NoError(t, err)

	require.NoError(t, s.Update(e.ID, dec("12.50"), model.CategoryWork, "team lunch"))

	got, ok := s.Get(e.ID)
	require.True(t, ok)
	assert.True(t, got.Amount.Equal(dec("12.50")))
	assert.Equal(t, model.CategoryWork, got.Category)
	assert.Equal(t, "team lunch", got.Description)
	assert.True(t, got.Timestamp.Equal(ts), "edit never touches the timestamp")
}

func TestUpdate_InvalidAmountLeavesRecordUnchanged(t *testing.T) {
	s := NewStore()
	e, err := s.Add(dec("10"), model.CategoryFood, "lunch", date(2024, 6, 1))
	require.NoError(t, err)

	err = s.Update(e.ID, dec("-5"), model.CategoryFood, "lunch")
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	got, _ := s.Get(e.ID)
	assert.True(t, got.Amount.Equal(dec("10")), "amount unchanged after rejected edit")
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewStore()
	err := s.Update("exp-000404", dec("5"), model.CategoryFood, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClear(t *testing.T) {
	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "x", time.Now())
	require.NoError(t, err)

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "expenses.csv")

	s := NewStore()
	_, err := s.Add(dec("50.25"), model.CategoryFood, "groceries", date(2024, 6, 1))
	require.NoError(t, err)
	_, err = s.Add(dec("30"), model.CategoryBills, "electricity", date(2024, 6, 2))
	require.NoError(t, err)
	require.NoError(t, s.Save(path))

	loaded := NewStore()
	require.NoError(t, loaded.Load(path))
	require.Equal(t, 2, loaded.Len())

	// Order, amounts, and timestamps survive; IDs are reassigned.
	for i, e := range loaded.All() {
		orig := s.All()[i]
		assert.True(t, e.Amount.Equal(orig.Amount))
		assert.Equal(t, orig.Category, e.Category)
		assert.Equal(t, orig.Description, e.Description)
		assert.True(t, e.Timestamp.Equal(orig.Timestamp))
		assert.NotEmpty(t, e.ID)
	}
}

func TestLoad_MissingFileMeansEmptyStore(t *testing.T) {
	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "stale", time.Now())
	require.NoError(t, err)

	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "nope.csv")))
	assert.Zero(t, s.Len())
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := "50,Food,groceries,1717243200000\nonly,two\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewStore()
	require.NoError(t, s.Load(path))
	require.Equal(t, 1, s.Len(), "malformed line skipped, no error raised")
	assert.Equal(t, model.CategoryFood, s.All()[0].Category)
}

func TestSave_FailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the create fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "expenses.csv"), 0o755))

	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "x", time.Now())
	require.NoError(t, err)

	err = s.Save(filepath.Join(dir, "expenses.csv"))
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "save", perr.Op)
	assert.Equal(t, 1, s.Len(), "failed save leaves the store as the unsaved true state")
}

func TestLoad_FailureKeepsPreviousContents(t *testing.T) {
	dir := t.TempDir()
	// A directory at the path gives an open-for-read error on Load.
	unreadable := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(unreadable, 0o755))

	s := NewStore()
	_, err := s.Add(dec("10"), model.CategoryFood, "kept", time.Now())
	require.NoError(t, err)

	err = s.Load(unreadable)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, s.Len())
}
