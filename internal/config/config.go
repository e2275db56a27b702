package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file at the root of a books repository.
const FileName = "liasse.yaml"

// Config represents the top-level liasse.yaml configuration.
type Config struct {
	Entity       EntityConfig  `yaml:"entity"`
	Fiscal       FiscalConfig  `yaml:"fiscal"`
	BankAccounts []BankAccount `yaml:"bank_accounts,omitempty"`
	Git          GitConfig     `yaml:"git"`
}

// EntityConfig identifies the reporting entity.
type EntityConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
	Siren      string `yaml:"siren,omitempty"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// BankAccount maps an imported bank statement to a treasury account and the
// suspense account its unmatched movements land on.
type BankAccount struct {
	Name            string `yaml:"name"`
	IBANSuffix      string `yaml:"iban_suffix"`
	AccountCode     string `yaml:"account_code"`
	SuspenseAccount string `yaml:"suspense_account,omitempty"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a liasse.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books
// repository.
func Default(entityName, entityType string) *Config {
	return &Config{
		Entity: EntityConfig{
			Name:       entityName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Liasse",
			AuthorEmail: "books@liasse.dev",
		},
	}
}
