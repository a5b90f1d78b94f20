package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/printlint/printlint/pkg/config"
)

// envVarPrefix is the prefix for all printlint environment variables.
const envVarPrefix = "PRINTLINT_"

// EnvConfigPath returns an explicit config path set via PRINTLINT_CONFIG.
func EnvConfigPath() string {
	return os.Getenv(envVarPrefix + "CONFIG")
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PRINTLINT_ (e.g., PRINTLINT_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = parseSliceValue(v)
	}

	for _, b := range []struct {
		suffix string
		field  *bool
	}{
		{"INCLUDE_HEADERS", &cfg.IncludeHeaders},
		{"NO_CONTEXT", &cfg.NoContext},
		{"DEBUG", &cfg.Debug},
	} {
		envVar := envVarPrefix + b.suffix
		v := os.Getenv(envVar)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, v)
		}
		*b.field = parsed
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"PRINTLINT_CONFIG":          "Explicit config file path",
		"PRINTLINT_FORMAT":          "Output format: text or json",
		"PRINTLINT_COLOR":           "Color mode: auto, always, or never",
		"PRINTLINT_IGNORE":          "Comma-separated list of ignore patterns",
		"PRINTLINT_INCLUDE_HEADERS": "Scan .h files: true or false",
		"PRINTLINT_NO_CONTEXT":      "Hide source context lines: true or false",
		"PRINTLINT_DEBUG":           "Enable debug logging: true or false",
	}
}
