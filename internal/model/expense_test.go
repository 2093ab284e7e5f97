package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewExpense(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.Local)

	e, err := NewExpense(dec("12.50"), CategoryFood, "lunch", ts)
	require.NoError(t, err)
	assert.True(t, e.Amount.Equal(dec("12.50")))
	assert.Equal(t, CategoryFood, e.Category)
	assert.Equal(t, "lunch", e.Description)
	assert.Equal(t, ts, e.Timestamp)
}

func TestNewExpense_DefaultsTimestamp(t *testing.T) {
	before := time.Now()
	e, err := NewExpense(dec("5"), CategoryBills, "", time.Time{})
	require.NoError(t, err)
	assert.False(t, e.Timestamp.Before(before))
	assert.False(t, e.Timestamp.After(time.Now()))
}

func TestNewExpense_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5", "-0.01"} {
		_, err := NewExpense(dec(amount), CategoryFood, "x", time.Now())
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
	}
}

func TestNewExpense_RejectsUnknownCategory(t *testing.T) {
	_, err := NewExpense(dec("5"), Category("Gambling"), "x", time.Now())
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, NoDescription, NormalizeDescription(""))
	assert.Equal(t, NoDescription, NormalizeDescription("   "))
	assert.Equal(t, "coffee", NormalizeDescription("  coffee "))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("food")
	require.NoError(t, err)
	assert.Equal(t, CategoryFood, c)

	c, err = ParseCategory(" Transport ")
	require.NoError(t, err)
	assert.Equal(t, CategoryTransport, c)

	_, err = ParseCategory("snacks")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategories_FixedSet(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 12)
	for _, c := range cats {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory(Category("Misc")))
}
