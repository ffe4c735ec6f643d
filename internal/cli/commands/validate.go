package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/outstat/pkg/config"
	"github.com/ccollicutt/outstat/pkg/extract"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an outstat configuration file without reading any report.

Checks:
  - YAML syntax
  - Report format and log level
  - Regex pattern validity
  - Layout columns and field indices`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: validate expects exactly one config file", ErrUsage)
			}
			return nil
		},
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ExitCode = ExitOK
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Format:    %s\n", cfg.Format)
	fmt.Fprintf(out, "  Log level: %s\n", cfg.LogLevel)

	fmt.Fprintf(out, "\nLayouts:\n")
	for _, l := range []*extract.Layout{cfg.Layouts.Cumulative.Layout(), cfg.Layouts.Rate.Layout()} {
		fmt.Fprintf(out, "  [%s] %s\n", l.Name, l.Report.String())
		for i, col := range l.Columns {
			fmt.Fprintf(out, "     %-20s field %d\n", col, l.Indices[i])
		}
		if len(l.Split) > 0 {
			fmt.Fprintf(out, "     first word only: %s\n", joinInts(l.Split))
		}
	}

	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
