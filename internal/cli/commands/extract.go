package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/outstat/pkg/config"
	"github.com/ccollicutt/outstat/pkg/extract"
	"github.com/ccollicutt/outstat/pkg/output"
	"github.com/ccollicutt/outstat/pkg/parser"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitNoRecords = 1
	ExitError     = 2
)

// ExitCode is set by commands to indicate the result
var ExitCode = ExitOK

var (
	// ErrUsage marks bad arguments or flags.
	ErrUsage = errors.New("usage")

	// ErrInputNotFound marks a missing Nexus output file.
	ErrInputNotFound = errors.New("input not found")
)

// ExtractOptions holds command-line options for extraction.
type ExtractOptions struct {
	Output  string
	Format  string
	Config  string
	Verbose bool
	Quiet   bool
}

// NewExtractCommand creates the extraction command. It is the root command of
// the outstat binary.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "outstat <model.out>",
		Short: "Extract well status summaries from Nexus output files",
		Long: `outstat reads a Nexus simulator .out report and tabulates the well status
found in its Well Cumulative Summary and Active Well Rate Summary sections.

One row is written per reservoir, well and report time, sorted by time.
Multi-reservoir models get a subtotal-aware RESERVOIR column.

Examples:
  outstat model.out
  outstat model.out -f txt -o status.txt
  outstat model.out --config layouts.yaml --verbose`,
		Args: extractArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addExtractFlags(cmd, opts)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	return cmd
}

func addExtractFlags(cmd *cobra.Command, opts *ExtractOptions) {
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "Report file name (default <model>_stat.<format>)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", config.DefaultFormat, "Report format (xlsx|txt)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML file overriding section layouts")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log parsing details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print warnings and the final summary")
}

// extractArgs requires exactly one Nexus output file argument.
func extractArgs(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing Nexus output file argument", ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, args[1:])
	}
	return nil
}

// runExtract parses a Nexus output file and writes the well status report.
func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	ExitCode = ExitOK
	input := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()

	// Flags win over the environment and the config file
	var overrides []config.Override
	if cmd.Flags().Changed("format") {
		if err := config.ValidateFormat(opts.Format); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		overrides = append(overrides, config.WithFormat(opts.Format))
	}
	switch {
	case opts.Verbose:
		overrides = append(overrides, config.WithLogLevel("debug"))
	case opts.Quiet:
		overrides = append(overrides, config.WithLogLevel("warn"))
	}

	cfg, err := loadConfig(ctx, opts.Config, overrides)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	format := cfg.Format

	if info, err := os.Stat(input); err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s Nexus model output file does not exist", ErrInputNotFound, input)
	}

	reportFile := opts.Output
	if reportFile == "" {
		reportFile = DefaultReportPath(input, format)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	progress := stdout
	if opts.Quiet {
		progress = io.Discard
	}

	src, err := parser.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	ex := extract.New(
		extract.WithLayouts(cfg.Layouts.Rate.Layout(), cfg.Layouts.Cumulative.Layout()),
		extract.WithLogger(logger),
		extract.WithProgress(progress),
	)

	table, err := ex.Parse(ctx, src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}

	result, err := extract.Finalize(table)
	if errors.Is(err, extract.ErrNoRecords) {
		fmt.Fprintf(stdout, "-->No well status record found in %s\n", filepath.Base(input))
		ExitCode = ExitNoRecords
		return nil
	}
	if err != nil {
		return err
	}

	formatter, err := output.New(format, output.DefaultFormatOptions())
	if err != nil {
		return err
	}
	if err := writeReport(ctx, formatter, result, reportFile); err != nil {
		return err
	}

	folder, err := filepath.Abs(filepath.Dir(reportFile))
	if err != nil {
		folder = filepath.Dir(reportFile)
	}
	fmt.Fprintf(stdout, "-->Found %d records for well status, check file %s in folder %s for data\n",
		len(result.Rows), filepath.Base(reportFile), folder)

	return nil
}

// DefaultReportPath derives the report name from the input file name.
func DefaultReportPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_stat." + format
}

// ExitCodeFor maps an error returned by a command to a process exit code.
// Any error, whatever its cause, exits with ExitError; without one the code
// set by the command is used.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitCode
	}
	return ExitError
}

func loadConfig(ctx context.Context, path string, overrides []config.Override) (*config.Config, error) {
	if path == "" {
		return config.Resolve(overrides...)
	}
	return config.Load(ctx, path, overrides...)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// writeReport renders the result to path. A partial file is removed on error.
func writeReport(ctx context.Context, formatter output.Formatter, result *extract.Result, path string) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := formatter.Format(ctx, result, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("formatting %s report: %w", formatter.Name(), err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}
