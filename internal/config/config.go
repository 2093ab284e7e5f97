package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name at the outlay home.
const FileName = "outlay.yaml"

// Settings is the top-level outlay.yaml configuration.
type Settings struct {
	Data DataConfig `yaml:"data"`
	Git  GitConfig  `yaml:"git"`
}

// DataConfig locates the flat data files, relative to the outlay home.
type DataConfig struct {
	ExpensesFile string `yaml:"expenses_file"`
	BudgetFile   string `yaml:"budget_file"`
}

// GitConfig controls the optional git snapshot after each save.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an outlay.yaml file from disk.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

// Save writes Settings to a YAML file.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Default returns Settings with sensible defaults for a new home.
func Default() *Settings {
	s := &Settings{
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Outlay",
			AuthorEmail: "outlay@localhost",
		},
	}
	s.applyDefaults()
	return s
}

func (s *Settings) applyDefaults() {
	if s.Data.ExpensesFile == "" {
		s.Data.ExpensesFile = "data/expenses.csv"
	}
	if s.Data.BudgetFile == "" {
		s.Data.BudgetFile = "data/config.txt"
	}
}
