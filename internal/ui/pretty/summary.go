package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/printlint/printlint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "4 errors in 2 files (31 call sites checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ErrorsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files, %d call sites checked)",
				stats.FilesProcessed, stats.CallSites))
		if stats.FilesRewritten > 0 {
			fileWord := wordFiles
			if stats.FilesRewritten == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d %s rewritten", stats.FilesRewritten, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	errorWord := "errors"
	if stats.ErrorsTotal == 1 {
		errorWord = "error"
	}
	parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.ErrorsTotal, errorWord)))

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	return strings.Join(parts, " ") +
		s.Dim.Render(fmt.Sprintf(" (%d call sites checked)", stats.CallSites)) + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesRewritten > 0 {
		builder.WriteString("  Files rewritten:   " +
			s.Success.Render(strconv.Itoa(stats.FilesRewritten)) + "\n")
	}

	builder.WriteString("  Call sites:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.CallSites)) + "\n")

	builder.WriteString("\n")

	builder.WriteString("  Total errors:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.ErrorsTotal)) + "\n")

	for _, kind := range stats.ErrorKinds() {
		count := stats.ErrorsByKind[kind]
		builder.WriteString(fmt.Sprintf("    %-16s %s\n", kind+":",
			s.Error.Render(strconv.Itoa(count))))
	}

	builder.WriteString("\n")

	if stats.ErrorsTotal > 0 {
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
