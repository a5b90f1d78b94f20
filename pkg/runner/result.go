package runner

import (
	"sort"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/diag"
	"github.com/printlint/printlint/pkg/ir"
)

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Snapshot is the file content with its line index. Nil when the file
	// could not be read.
	Snapshot *csrc.Snapshot

	// IR is the validated representation. Nil when the file has errors or
	// was skipped.
	IR *ir.IR

	// Diagnostics are the resolved findings for the file.
	Diagnostics []diag.Diagnostic

	// SourceErrors bundles the raw errors for span-level rendering.
	// Nil when the file is clean.
	SourceErrors *diag.SourceErrors

	// Skipped is true when the file matched discovery but content
	// detection ruled it out.
	Skipped bool

	// Error is set if the file could not be processed at all.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully analyzed.
	FilesProcessed int

	// FilesSkipped is the number of files ruled out by content detection.
	FilesSkipped int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one error.
	FilesWithIssues int

	// FilesRewritten is the number of rewrite outputs written.
	FilesRewritten int

	// ErrorsTotal is the total number of errors across all files.
	ErrorsTotal int

	// ErrorsByKind maps error names (e.g. "excess-specifiers") to counts.
	ErrorsByKind map[string]int

	// CallSites is the number of validated call sites in clean files.
	CallSites int
}

// ErrorKinds returns the error names present in the run, sorted.
func (s Stats) ErrorKinds() []string {
	kinds := make([]string, 0, len(s.ErrorsByKind))
	for kind := range s.ErrorsByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any errors were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorsTotal > 0
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		ErrorsByKind: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.IR != nil {
		r.Stats.CallSites += outcome.IR.SiteCount()
	}

	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithIssues++
		r.Stats.ErrorsTotal += len(outcome.Diagnostics)
		for _, d := range outcome.Diagnostics {
			r.Stats.ErrorsByKind[d.Name]++
		}
	}
}
