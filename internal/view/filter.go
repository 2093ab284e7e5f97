package view

import (
	"strings"

	"github.com/outlay-dev/outlay/internal/model"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter returns the ordered subsequence of records matching both the
// free-text search and the category filter. The search is a plain
// case-insensitive substring match against the description or the
// category label; an empty search matches everything.
func Filter(records []model.Expense, search, category string) []model.Expense {
	search = strings.ToLower(strings.TrimSpace(search))
	anyCategory := category == "" || strings.EqualFold(category, CategoryAll)

	var out []model.Expense
	for _, e := range records {
		if !anyCategory && !strings.EqualFold(string(e.Category), category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Description), search) &&
			!strings.Contains(strings.ToLower(string(e.Category)), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}
