package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/printlint/printlint/internal/configloader"
	"github.com/printlint/printlint/internal/logging"
	"github.com/printlint/printlint/pkg/config"
	"github.com/printlint/printlint/pkg/fsutil"
	"github.com/printlint/printlint/pkg/ir"
	"github.com/printlint/printlint/pkg/reporter"
	"github.com/printlint/printlint/pkg/runner"
)

// Sentinel errors used for exit code mapping.
var (
	// ErrIssuesFound is returned when the check finds errors.
	ErrIssuesFound = errors.New("issues found")

	// ErrInvalidUsage is returned for invalid flag/argument combinations.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig is returned for configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

type checkFlags struct {
	format    string
	ignore    []string
	jobs      int
	noContext bool
	compact   bool
	noSummary bool
	optimize  string
	typecast  string
	output    string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check C files for printf-family misuse",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check C files for unsafe printf, sprintf, and snprintf call sites.

By default, checks all .c and .h files in the current directory and
subdirectories. Specify paths to check specific files or directories.

Three defect classes are reported: non-literal format strings, specifier
types that contradict an argument's explicit cast, and specifier counts
that disagree with argument counts.

Examples:
  printlint check                        # Check current directory
  printlint check src/                   # Check src directory
  printlint check main.c                 # Check single file
  printlint check --format json          # Output as JSON for CI
  printlint check main.c --optimize out.c   # Write safe_* rewrite
  printlint check main.c --typecast out.c   # Write cast-annotated rewrite`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	cliCfg := &config.Config{
		Ignore:    flags.ignore,
		NoContext: flags.noContext,
		Optimize:  flags.optimize,
		Typecast:  flags.typecast,
		Output:    flags.output,
	}
	// The flag default must not shadow a config file value.
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	if (cfg.Optimize != "" || cfg.Typecast != "") && len(args) != 1 {
		return fmt.Errorf("%w: rewrite outputs require exactly one input file", ErrInvalidUsage)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         flags.jobs,
		Config:       cfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldFormat, cfg.Format,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	if err := writeRewrites(ctx, cfg, result, logger); err != nil {
		return err
	}

	if err := report(ctx, cmd, cfg, flags, result); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

// writeRewrites renders the requested rewrite outputs for a clean
// single-file run. A file with errors is never rewritten; the findings are
// still reported and the run fails as usual.
func writeRewrites(ctx context.Context, cfg *config.Config, result *runner.Result, logger *log.Logger) error {
	if cfg.Optimize == "" && cfg.Typecast == "" {
		return nil
	}

	var parsed *ir.IR
	for _, file := range result.Files {
		if file.IR != nil {
			parsed = file.IR
			break
		}
	}
	if parsed == nil {
		return nil
	}

	if cfg.Optimize != "" {
		if err := fsutil.WriteNew(ctx, cfg.Optimize, parsed.RenderOptimize(), 0); err != nil {
			return fmt.Errorf("write optimize output: %w", err)
		}
		result.Stats.FilesRewritten++
		logger.Debug("wrote rewrite output",
			logging.FieldOutput, cfg.Optimize, logging.FieldOptimize, true)
	}

	if cfg.Typecast != "" {
		if err := fsutil.WriteNew(ctx, cfg.Typecast, parsed.RenderTypecast(), 0); err != nil {
			return fmt.Errorf("write typecast output: %w", err)
		}
		result.Stats.FilesRewritten++
		logger.Debug("wrote rewrite output",
			logging.FieldOutput, cfg.Typecast, logging.FieldTypecast, true)
	}

	return nil
}

// report renders the run result to stdout or, with --output, to a file.
func report(ctx context.Context, cmd *cobra.Command, cfg *config.Config, flags *checkFlags, result *runner.Result) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	var out io.Writer = cmd.OutOrStdout()
	var fileBuf *bytes.Buffer
	if cfg.Output != "" {
		fileBuf = &bytes.Buffer{}
		out = fileBuf
		// Never emit escape codes into a report file.
		colorMode = "never"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.Format(cfg.Format),
		Color:       colorMode,
		ShowContext: !cfg.NoContext,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if fileBuf != nil {
		if err := fsutil.WriteAtomic(ctx, cfg.Output, fileBuf.Bytes(), 0); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().StringVar(&flags.optimize, "optimize", "",
		"write a safe_* rewrite of a single clean file to this path")
	cmd.Flags().StringVar(&flags.typecast, "typecast", "",
		"write a cast-annotated rewrite of a single clean file to this path")
	cmd.Flags().StringVar(&flags.output, "output", "", "write the report to a file instead of stdout")
}
