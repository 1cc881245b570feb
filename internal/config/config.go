// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-enhancer/internal/document"
	"github.com/jonathan/resume-enhancer/internal/segment"
	"github.com/jonathan/resume-enhancer/internal/types"
)

// DefaultPort is the HTTP port used by serve when none is configured.
const DefaultPort = 8080

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Segmentation
	PrefixLabel    string   `json:"prefix_label,omitempty"`    // Label stripped from the start of the enhancement text
	EntrySection   string   `json:"entry_section,omitempty"`   // Section grouped into entries
	EntryDelimiter string   `json:"entry_delimiter,omitempty"` // Marks an entry header line
	ContactSection string   `json:"contact_section,omitempty"` // Section rendered as key/value pairs
	TagSections    []string `json:"tag_sections,omitempty"`    // Sections rendered as token grids

	// Input
	Format string `json:"format,omitempty"` // text, markdown or html; detected from the file extension when empty

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration matching the analysis service output.
func Defaults() Config {
	opts := document.DefaultOptions()
	return Config{
		PrefixLabel:    segment.DefaultPrefixLabel,
		EntrySection:   opts.EntrySection,
		EntryDelimiter: opts.EntryDelimiter,
		ContactSection: opts.ContactSection,
		TagSections:    opts.TagSections,
		Port:           DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Empty fields are allowed; they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Format {
	case "", types.FormatText, types.FormatMarkdown, types.FormatHTML:
	default:
		return fmt.Errorf("config error: unknown format %q", c.Format)
	}

	if strings.ContainsAny(c.EntryDelimiter, "\n\r") {
		return fmt.Errorf("config error: 'entry_delimiter' must be a single line")
	}

	titles := map[string]string{}
	check := func(field, title string) error {
		if title == "" {
			return nil
		}
		if _, ok := segment.IsHeader(title + ":"); !ok {
			return fmt.Errorf("config error: '%s' value %q can never be a section title", field, title)
		}
		if prev, ok := titles[title]; ok {
			return fmt.Errorf("config error: %q is used by both '%s' and '%s'", title, prev, field)
		}
		titles[title] = field
		return nil
	}
	if err := check("entry_section", c.EntrySection); err != nil {
		return err
	}
	if err := check("contact_section", c.ContactSection); err != nil {
		return err
	}
	for _, tag := range c.TagSections {
		if err := check("tag_sections", tag); err != nil {
			return err
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.PrefixLabel == "" {
		result.PrefixLabel = defaults.PrefixLabel
	}
	if result.EntrySection == "" {
		result.EntrySection = defaults.EntrySection
	}
	if result.EntryDelimiter == "" {
		result.EntryDelimiter = defaults.EntryDelimiter
	}
	if result.ContactSection == "" {
		result.ContactSection = defaults.ContactSection
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Slices: use default if nil or empty
	if len(result.TagSections) == 0 {
		result.TagSections = append([]string(nil), defaults.TagSections...)
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DocumentOptions returns the structuring options for document.Build.
func (c *Config) DocumentOptions() document.Options {
	return document.Options{
		EntrySection:   c.EntrySection,
		EntryDelimiter: c.EntryDelimiter,
		ContactSection: c.ContactSection,
		TagSections:    append([]string(nil), c.TagSections...),
	}
}

// Segmenter returns a segmenter stripping the configured prefix label.
func (c *Config) Segmenter() *segment.Segmenter {
	return &segment.Segmenter{PrefixLabel: c.PrefixLabel}
}
