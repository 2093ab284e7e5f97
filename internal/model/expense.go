package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NoDescription is the placeholder stored when the user gives no text.
const NoDescription = "No description"

var (
	// ErrInvalidAmount rejects non-positive amounts on create and edit.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrUnknownCategory rejects labels outside the fixed category set.
	ErrUnknownCategory = errors.New("unknown category")
)

// Category labels an expense. The set is fixed; arbitrary labels are
// rejected on creation and when reading persisted data.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryWork          Category = "Work"
	CategoryTravel        Category = "Travel"
	CategoryHousing       Category = "Housing"
	CategoryTechnology    Category = "Technology"
	CategoryOther         Category = "Other"
)

var categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBills,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryWork,
	CategoryTravel,
	CategoryHousing,
	CategoryTechnology,
	CategoryOther,
}

var categorySet = func() map[Category]bool {
	set := make(map[Category]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}()

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is in the fixed set.
func ValidCategory(c Category) bool {
	return categorySet[c]
}

// ParseCategory matches a label case-insensitively against the fixed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Expense is one logged transaction.
type Expense struct {
	ID          string // surrogate, assigned by the store; not persisted
	Amount      decimal.Decimal
	Category    Category
	Description string
	Timestamp   time.Time
}

// NewExpense validates and builds an Expense. A zero timestamp means
// "now". The description is normalized; the timestamp is kept as given.
func NewExpense(amount decimal.Decimal, category Category, description string, ts time.Time) (Expense, error) {
	if !amount.IsPositive() {
		return Expense{}, ErrInvalidAmount
	}
	if !ValidCategory(category) {
		return Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	return Expense{
		Amount:      amount,
		Category:    category,
		Description: NormalizeDescription(description),
		Timestamp:   ts,
	}, nil
}

// NormalizeDescription trims the text and substitutes the placeholder
// for empty input.
func NormalizeDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoDescription
	}
	return s
}
