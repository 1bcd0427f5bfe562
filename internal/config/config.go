// Package config loads and validates generator configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"limitdocs/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrProfileNoName    = errors.New("profile name cannot be empty")
	ErrDuplicateProfile = errors.New("duplicate profile name")
)

// Field length limits.
const (
	MaxTitleLength   = 200  // Cover title/subtitle
	MaxVersionLength = 50   // Version string
	MaxDateLength    = 30   // "2025-12-31" or "December 31, 2025"
	MaxStatusLength  = 50   // "DRAFT", "FINAL", "v1.2.3"
	MaxTextLength    = 500  // Footer/free-form text
	MaxNameLength    = 100  // Profile/organization names
	MaxPathLength    = 4096 // Output paths
)

// DefaultOutputPath is where the document is written when nothing else
// is configured.
const DefaultOutputPath = "docs/rate-limiter-documentation.pdf"

// Config holds all configuration for document generation.
type Config struct {
	Document  DocumentConfig  `yaml:"document"`
	Output    OutputConfig    `yaml:"output"`
	Style     StyleConfig     `yaml:"style"`
	Page      PageConfig      `yaml:"page"`
	Footer    FooterConfig    `yaml:"footer"`
	TOC       TOCConfig       `yaml:"toc"`
	Watermark WatermarkConfig `yaml:"watermark"`
	Assets    AssetsConfig    `yaml:"assets"`
	Profiles  []ProfileConfig `yaml:"profiles"`
}

// DocumentConfig defines document-level metadata.
type DocumentConfig struct {
	Title        string   `yaml:"title"`        // Cover title (empty = builtin)
	Subtitle     string   `yaml:"subtitle"`     // Cover subtitle (empty = builtin)
	Tagline      string   `yaml:"tagline"`      // Cover tagline (empty = builtin)
	Organization string   `yaml:"organization"` // Shown on the cover
	Version      string   `yaml:"version"`      // Document version (empty = builtin)
	Date         string   `yaml:"date"`         // Supports "auto" / "auto:FORMAT"
	ExtraFiles   []string `yaml:"extraFiles"`   // Markdown appendices appended to the report
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // Output PDF path (empty = DefaultOutputPath)
	HTML bool   `yaml:"html"` // Also write the intermediate HTML next to the PDF
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Theme name, file path, or raw CSS (empty = "report")
}

// PageConfig defines page layout options.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"`   // Optional, supports "auto"
	Status         string `yaml:"status"` // Optional: "DRAFT", "FINAL", "v1.2"
	Text           string `yaml:"text"`   // Optional free-form text
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Disabled bool   `yaml:"disabled"`
	Title    string `yaml:"title"`    // Heading above the TOC
	MaxDepth int    `yaml:"maxDepth"` // Deepest heading level (0 = default)
}

// WatermarkConfig defines watermark options.
type WatermarkConfig struct {
	Text    string  `yaml:"text"` // Empty = no watermark
	Color   string  `yaml:"color"`
	Opacity float64 `yaml:"opacity"`
	Angle   float64 `yaml:"angle"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ProfileConfig defines one output edition of the document.
// Profiles inherit the top-level config; set fields override it.
type ProfileConfig struct {
	Name      string          `yaml:"name"`      // Required, used in logs
	Output    string          `yaml:"output"`    // Output path override
	Status    string          `yaml:"status"`    // Footer status override
	Page      PageConfig      `yaml:"page"`      // Page overrides (zero fields inherit)
	Watermark WatermarkConfig `yaml:"watermark"` // Watermark override
}

// DefaultConfig returns the configuration used with no config file:
// the builtin document, default theme, page-numbered footer, and TOC.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Path: DefaultOutputPath},
		Style:  StyleConfig{Name: "report"},
		Footer: FooterConfig{Enabled: true, ShowPageNumber: true},
		TOC:    TOCConfig{Title: "Table of Contents"},
		Document: DocumentConfig{
			Date: "auto:timestamp",
		},
	}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/limitdocs/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "limitdocs", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Validate checks field lengths and profile consistency.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxTitleLength},
		{"document.tagline", c.Document.Tagline, MaxTitleLength},
		{"document.organization", c.Document.Organization, MaxNameLength},
		{"document.version", c.Document.Version, MaxVersionLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"footer.status", c.Footer.Status, MaxStatusLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"toc.title", c.TOC.Title, MaxTitleLength},
		{"watermark.text", c.Watermark.Text, MaxStatusLength},
	}

	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.field, len(check.value), check.max)
		}
	}

	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.Name == "" {
			return ErrProfileNoName
		}
		if len(p.Name) > MaxNameLength {
			return fmt.Errorf("%w: profile name (%d > %d)", ErrFieldTooLong, len(p.Name), MaxNameLength)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateProfile, p.Name)
		}
		seen[p.Name] = true
		if len(p.Output) > MaxPathLength {
			return fmt.Errorf("%w: profile %q output path", ErrFieldTooLong, p.Name)
		}
	}

	return nil
}
