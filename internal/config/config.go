package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"dienstplan/internal/fsutil"
)

const (
	DefaultInput        = "pdf_ocr_output.txt"
	DefaultOutput       = "dienstplan.ics"
	DefaultEncoding     = "utf-8"
	DefaultTimezone     = "Europe/Berlin"
	DefaultCalendarName = "Dienstplan"
	DefaultProductID    = "-//dienstplan//Roster Export//DE"
	DefaultLogLevel     = "info"
)

// Config is the top-level application configuration. Every field can be
// overridden from the command line.
type Config struct {
	// Input is the OCR text file produced from the roster PDF.
	Input string `yaml:"input" json:"input"`

	// Output is the iCalendar file to write.
	Output string `yaml:"output" json:"output"`

	// Encoding names the character set of Input. Supported values:
	//   - "utf-8" (default)
	//   - "windows-1252"
	//   - "iso-8859-1", "iso-8859-15"
	//   - "macintosh"
	Encoding string `yaml:"encoding" json:"encoding"`

	// RepairMojibake undoes UTF-8 text that was read as MacRoman somewhere
	// upstream ("Wochen√ºbersicht").
	RepairMojibake bool `yaml:"repair_mojibake" json:"repair_mojibake"`

	// Timezone is the IANA zone the roster times are expressed in.
	Timezone string `yaml:"timezone" json:"timezone"`

	// CalendarName becomes X-WR-CALNAME in the output.
	CalendarName string `yaml:"calendar_name" json:"calendar_name"`

	ProductID string `yaml:"product_id" json:"product_id"`

	// Person pins the "<Surname>, <Givenname> Frei" marker to one employee.
	// Empty matches any capitalized "Surname, Givenname".
	Person string `yaml:"person,omitempty" json:"person,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:          DefaultInput,
		Output:         DefaultOutput,
		Encoding:       DefaultEncoding,
		RepairMojibake: true,
		Timezone:       DefaultTimezone,
		CalendarName:   DefaultCalendarName,
		ProductID:      DefaultProductID,
		LogLevel:       DefaultLogLevel,
	}
}

// Normalize fills in empty values with defaults so that partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.CalendarName == "" {
		c.CalendarName = DefaultCalendarName
	}
	if c.ProductID == "" {
		c.ProductID = DefaultProductID
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - empty path: defaults
//   - missing file: defaults (use Save or `dienstplan init-config` to create one)
//   - existing file: YAML is applied on top of the defaults, then normalized
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0o600)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
