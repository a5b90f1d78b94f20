package pretty

import (
	"fmt"
	"strings"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/diag"
)

// FormatDiagnostic formats a single finding for terminal output. The
// snapshot supplies source context lines; width bounds how much of a long
// source line is shown.
func (s *Styles) FormatDiagnostic(d diag.Diagnostic, snap *csrc.Snapshot, showContext bool, width int) string {
	var builder strings.Builder

	line, col := 0, 0
	if len(d.Labels) > 0 {
		line, col = d.Labels[0].Line, d.Labels[0].Column
	}

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(d.FilePath), line, col)
	codeDisplay := s.Code.Render("(" + d.Code + "/" + d.Name + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(d.Message),
		codeDisplay,
	))

	if showContext {
		for _, label := range d.Labels {
			builder.WriteString(s.formatLabel(label, snap, width))
		}
	}

	if d.Help != "" {
		builder.WriteString("    " + s.Dim.Render("help:") + " " +
			s.Help.Render(d.Help) + "\n")
	}

	return builder.String()
}

// formatLabel renders one labeled span as a gutter-prefixed source line with
// an underline row beneath it. A label spanning multiple lines is underlined
// to the end of its first line.
func (s *Styles) formatLabel(label diag.ResolvedLabel, snap *csrc.Snapshot, width int) string {
	source := string(snap.LineContent(label.Line))

	span := 1
	switch {
	case label.EndLine == label.Line && label.EndColumn > label.Column:
		span = label.EndColumn - label.Column
	case label.EndLine > label.Line:
		span = len(source) - label.Column + 1
	}
	if span < 1 {
		span = 1
	}

	gutter := fmt.Sprintf("%6d | ", label.Line)
	shown := source
	if width > 0 && len(gutter)+len(shown) > width {
		cut := width - len(gutter)
		if cut < label.Column+span {
			cut = label.Column + span
		}
		if cut < len(shown) {
			shown = shown[:cut]
		}
	}

	var builder strings.Builder
	builder.WriteString(s.LineNumber.Render(gutter) + s.SourceLine.Render(shown) + "\n")

	pad := strings.Repeat(" ", 6) + " | " + strings.Repeat(" ", label.Column-1)
	underline := "^"
	if span > 1 {
		underline += strings.Repeat("~", span-1)
	}
	builder.WriteString(pad + s.Caret.Render(underline))
	if label.Message != "" {
		builder.WriteString(" " + s.Label.Render(label.Message))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "errors"
		if issueCount == 1 {
			word = "error"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
