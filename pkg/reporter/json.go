package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/printlint/printlint/pkg/diag"
	"github.com/printlint/printlint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path      string            `json:"path"`
	CallSites int               `json:"callSites"`
	Errors    []diag.Diagnostic `json:"errors"`
	Error     string            `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesSkipped    int            `json:"filesSkipped"`
	FilesErrored    int            `json:"filesErrored"`
	CallSites       int            `json:"callSites"`
	TotalErrors     int            `json:"totalErrors"`
	ByKind          map[string]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalErrors, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByKind: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		if file.Skipped {
			continue
		}

		fileResult := JSONFileResult{
			Path:   file.Path,
			Errors: make([]diag.Diagnostic, 0, len(file.Diagnostics)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.IR != nil {
			fileResult.CallSites = file.IR.SiteCount()
		}

		fileResult.Errors = append(fileResult.Errors, file.Diagnostics...)

		for _, d := range file.Diagnostics {
			output.Summary.ByKind[d.Name]++
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary.FilesChecked = result.Stats.FilesProcessed
	output.Summary.FilesWithIssues = result.Stats.FilesWithIssues
	output.Summary.FilesSkipped = result.Stats.FilesSkipped
	output.Summary.FilesErrored = result.Stats.FilesErrored
	output.Summary.CallSites = result.Stats.CallSites
	output.Summary.TotalErrors = result.Stats.ErrorsTotal

	return output
}
