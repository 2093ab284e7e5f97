package id

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "exp-"

// FormatExpenseID returns an expense ID like "exp-000042".
func FormatExpenseID(seq int) string {
	return fmt.Sprintf("%s%06d", prefix, seq)
}

// ParseExpenseID parses "exp-000042" into its sequence number.
func ParseExpenseID(id string) (int, error) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, fmt.Errorf("invalid expense ID format: %q", id)
	}
	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in expense ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("invalid sequence in expense ID %q", id)
	}
	return seq, nil
}
