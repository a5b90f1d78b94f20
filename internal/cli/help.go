// Package cli provides the Cobra command structure for printlint.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/printlint/printlint/internal/ui/pretty"
)

// HelpFormatter renders cobra help and usage text with lipgloss styling.
// The command surface is small, so the templates cover exactly the sections
// printlint's commands produce: usage, examples, subcommands, and flags.
type HelpFormatter struct {
	command lipgloss.Style
	heading lipgloss.Style
	sub     lipgloss.Style
	flag    lipgloss.Style
	example lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpFormatter creates a formatter honoring colorMode for writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	plain := lipgloss.NewStyle()
	h := &HelpFormatter{
		command: plain,
		heading: plain,
		sub:     plain,
		flag:    plain,
		example: plain,
		dim:     plain,
	}
	if pretty.IsColorEnabled(colorMode, writer) {
		h.command = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
		h.heading = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
		h.sub = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		h.flag = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		h.example = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		h.dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return h
}

// ApplyToCommand installs the styled usage and help rendering on cmd.
// Cobra propagates the functions to every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.execute(command, "usage", h.usageTemplate())
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.execute(command, "help", h.helpTemplate()); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) execute(cmd *cobra.Command, name, text string) error {
	tmpl, err := template.New(name).Funcs(h.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command": h.command.Render,
		"heading": h.heading.Render,
		"sub":     h.sub.Render,
		"example": h.example.Render,
		"dim":     h.dim.Render,
		"flags":   h.styleFlags,
		"rpad":    rpad,
		"trim":    trimTrailingSpace,
	}
}

func (h *HelpFormatter) usageTemplate() string {
	return `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ sub (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`
}

func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trim }}

{{end}}` + h.usageTemplate()
}

// styleFlags colors the flag names in a pflag usage block. pflag separates
// the description column with at least two spaces; wrapped continuation
// lines do not start with '-' and pass through untouched.
func (h *HelpFormatter) styleFlags(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if gap := strings.Index(trimmed, "  "); gap >= 0 {
			lines[i] = indent + h.flag.Render(trimmed[:gap]) + trimmed[gap:]
		} else {
			lines[i] = indent + h.flag.Render(trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, padding int) string {
	if len(s) >= padding {
		return s
	}
	return s + strings.Repeat(" ", padding-len(s))
}

func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
