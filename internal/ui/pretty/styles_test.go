package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/printlint/printlint/internal/ui/pretty"
	"github.com/printlint/printlint/pkg/runner"
)

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.IsColorEnabled("always", &bytes.Buffer{}))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("never", &bytes.Buffer{}))
	})

	t.Run("auto with non-tty writer", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})

	t.Run("NO_COLOR wins in auto mode", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})
}

func TestNewStylesNoColorRendersPlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "hello", styles.Error.Render("hello"))
	assert.Equal(t, "hello", styles.Success.Render("hello"))
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, pretty.TerminalWidth(&bytes.Buffer{}))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("no issues", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 3, CallSites: 12})
		assert.Equal(t, "No issues found (3 files, 12 call sites checked)\n", out)
	})

	t.Run("issues with pluralization", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{
			FilesProcessed:  2,
			FilesWithIssues: 1,
			ErrorsTotal:     1,
			CallSites:       4,
		})
		assert.Equal(t, "1 error in 1 file (4 call sites checked)\n", out)
	})

	t.Run("rewritten files noted", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 1, CallSites: 2, FilesRewritten: 1})
		assert.Contains(t, out, "1 file rewritten")
	})
}

func TestFormatSummaryBlock(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("failing run", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummary(runner.Stats{
			FilesProcessed:  2,
			FilesWithIssues: 1,
			ErrorsTotal:     3,
			CallSites:       5,
			ErrorsByKind: map[string]int{
				"excess-args":       2,
				"nonliteral-format": 1,
			},
		})

		assert.Contains(t, out, "Summary")
		assert.Contains(t, out, "Files checked:     2")
		assert.Contains(t, out, "Total errors:      3")
		assert.Contains(t, out, "excess-args:")
		assert.Contains(t, out, "nonliteral-format:")
		assert.Contains(t, out, "Check failed with errors")
	})

	t.Run("passing run", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummary(runner.Stats{FilesProcessed: 1, CallSites: 2})
		assert.Contains(t, out, "Check passed")
	})
}
