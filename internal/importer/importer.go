package importer

import (
	"io"
	"strings"

	"github.com/outlay-dev/outlay/internal/model"
)

// Parser converts an external file into expense records.
type Parser interface {
	Parse(r io.Reader) ([]model.Expense, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// NewDefaultRegistry returns a registry with the built-in parsers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	return r
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}
