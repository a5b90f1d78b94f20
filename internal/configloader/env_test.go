package configloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printlint/printlint/internal/configloader"
	"github.com/printlint/printlint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PRINTLINT_FORMAT", "json")
	t.Setenv("PRINTLINT_COLOR", "never")
	t.Setenv("PRINTLINT_IGNORE", "vendor/**, build/** ,")
	t.Setenv("PRINTLINT_NO_CONTEXT", "true")
	t.Setenv("PRINTLINT_DEBUG", "1")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.Ignore)
	assert.True(t, cfg.NoContext)
	assert.True(t, cfg.Debug)
}

func TestLoadFromEnvInvalidBool(t *testing.T) {
	t.Setenv("PRINTLINT_NO_CONTEXT", "maybe")

	err := configloader.LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PRINTLINT_NO_CONTEXT")
}

func TestLoadFromEnvUnsetLeavesDefaults(t *testing.T) {
	t.Setenv("PRINTLINT_FORMAT", "")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestLoadFromEnvNilConfig(t *testing.T) {
	t.Parallel()

	assert.NoError(t, configloader.LoadFromEnv(nil))
}

func TestEnvConfigPath(t *testing.T) {
	t.Setenv("PRINTLINT_CONFIG", "/tmp/printlint.yaml")
	assert.Equal(t, "/tmp/printlint.yaml", configloader.EnvConfigPath())
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := configloader.ListEnvVars()
	for _, key := range []string{
		"PRINTLINT_CONFIG",
		"PRINTLINT_FORMAT",
		"PRINTLINT_COLOR",
		"PRINTLINT_IGNORE",
		"PRINTLINT_INCLUDE_HEADERS",
		"PRINTLINT_NO_CONTEXT",
		"PRINTLINT_DEBUG",
	} {
		assert.Contains(t, vars, key)
	}
}
