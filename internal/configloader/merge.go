package configloader

import "github.com/printlint/printlint/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. Zero values in override never override values in base; slices
// replace the base slice entirely when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Optimize != "" {
		result.Optimize = override.Optimize
	}
	if override.Typecast != "" {
		result.Typecast = override.Typecast
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	// Booleans only override in one direction: a config file cannot unset
	// what an earlier source enabled.
	if override.IncludeHeaders {
		result.IncludeHeaders = true
	}
	if override.NoContext {
		result.NoContext = true
	}
	if override.Debug {
		result.Debug = true
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}
