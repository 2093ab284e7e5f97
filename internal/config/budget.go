package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// LoadBudget reads the single-line budget file. A missing file, an
// unparseable line, or a negative value all mean "no budget set" and
// return zero without an error; that silent fallback is part of the
// file contract.
func LoadBudget(path string) decimal.Decimal {
	data, err := os.ReadFile(path)
	if err != nil {
		return decimal.Zero
	}
	line, _, _ := strings.Cut(string(data), "\n")
	budget, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil || budget.IsNegative() {
		return decimal.Zero
	}
	return budget
}

// SaveBudget writes the monthly budget as a single decimal line,
// creating parent directories as needed.
func SaveBudget(path string, budget decimal.Decimal) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating budget dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(budget.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	return nil
}
