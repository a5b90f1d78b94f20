package configloader

import (
	"fmt"
	"path/filepath"

	"github.com/printlint/printlint/pkg/config"
)

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s (got %q)", e.Field, e.Message, e.Value)
}

// ValidationWarning describes a suspicious but usable configuration value.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidationResult aggregates errors and warnings from validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Valid returns true when no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks the configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   string(cfg.Format),
			Message: "must be one of: text, json",
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   string(cfg.Color),
			Message: "must be one of: auto, always, never",
		})
	}

	for _, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "ignore",
				Value:   pattern,
				Message: "invalid glob pattern",
			})
		}
	}

	if cfg.Optimize != "" && cfg.Typecast != "" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "optimize",
			Message: "both rewrite outputs requested; each will be written separately",
		})
	}

	return result
}
