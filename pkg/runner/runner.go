package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/diag"
	"github.com/printlint/printlint/pkg/fsutil"
	"github.com/printlint/printlint/pkg/ir"
	"github.com/printlint/printlint/pkg/langdetect"
)

// Runner orchestrates multi-file analysis.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats. Files are processed by a worker pool but results are accumulated
// in discovery order, so two runs over the same tree produce identical
// output.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker analyzes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads, detects, and analyzes a single file.
func (r *Runner) processFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if !langdetect.IsCSource(path, content) {
		outcome.Skipped = true
		return outcome
	}

	snap := csrc.NewSnapshot(path, content)
	outcome.Snapshot = snap

	parsed, errs := ir.Parse(content)
	if len(errs) > 0 {
		outcome.SourceErrors = diag.NewSourceErrors(path, content, errs)
		outcome.Diagnostics = diag.ResolveAll(snap, errs)
		return outcome
	}

	outcome.IR = parsed
	return outcome
}
