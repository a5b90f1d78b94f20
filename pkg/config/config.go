// Package config defines core configuration types for printlint.
// These types are pure data structures with no dependency on the loader.
package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is supported.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for printlint.
type Config struct {
	// Format specifies the output format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// Color controls styled output ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// IncludeHeaders scans .h files in addition to .c files.
	IncludeHeaders bool `yaml:"include_headers"`

	// NoContext suppresses the source context lines under each finding.
	NoContext bool `yaml:"no_context"`

	// CLI-level options (not persisted to config files).

	// Optimize is the output path for the safe_* rewrite of a single file.
	Optimize string `yaml:"-"`

	// Typecast is the output path for the cast-inserting rewrite.
	Typecast string `yaml:"-"`

	// Output writes the report to a file instead of stdout.
	Output string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:         FormatText,
		Color:          ColorAuto,
		Ignore:         nil,
		IncludeHeaders: true,
	}
}
