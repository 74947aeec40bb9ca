package wizard

import (
	"fmt"
	"os"

	"github.com/mrsinham/bulkforge/internal/bulk"
	"github.com/mrsinham/bulkforge/internal/identity"
	"github.com/mrsinham/bulkforge/internal/patient"
	"github.com/mrsinham/bulkforge/internal/sheet"
	"gopkg.in/yaml.v3"
)

// Config represents a saved generation setup for YAML serialization.
// PatientAmount stays a string so loaded values go through the same
// validation as typed input.
type Config struct {
	FileName      string `yaml:"file_name"`
	NamePrefix    string `yaml:"name_prefix,omitempty"`
	PatientAmount string `yaml:"patient_amount"`
	OutputDir     string `yaml:"output_dir,omitempty"`
	Format        string `yaml:"format,omitempty"`
	Locale        string `yaml:"locale,omitempty"`
	Seed          int64  `yaml:"seed,omitempty"`
}

// DefaultConfig returns the values the form starts with.
func DefaultConfig() *Config {
	return &Config{
		NamePrefix: patient.DefaultNamePrefix,
		OutputDir:  ".",
		Format:     string(sheet.XLSX),
		Locale:     identity.DefaultLocale.String(),
	}
}

// LoadFromYAML reads a configuration file. Fields missing from the file keep
// their defaults.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// SaveToYAML writes cfg to path.
func SaveToYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Raw returns the three user-facing inputs.
func (c *Config) Raw() patient.Raw {
	return patient.Raw{
		FileName:      c.FileName,
		NamePrefix:    c.NamePrefix,
		PatientAmount: c.PatientAmount,
	}
}

// ServiceOptions parses the output settings.
func (c *Config) ServiceOptions() (bulk.Options, error) {
	format, err := sheet.ParseFormat(c.Format)
	if err != nil {
		return bulk.Options{}, err
	}
	locale, err := identity.ParseLocale(c.Locale)
	if err != nil {
		return bulk.Options{}, err
	}
	return bulk.Options{
		OutputDir: c.OutputDir,
		Format:    format,
		Locale:    locale,
		Seed:      c.Seed,
	}, nil
}
