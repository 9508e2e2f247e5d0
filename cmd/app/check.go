package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arumata/startwatch/internal/usecase"
)

func newCheckCmd(depsFactory func(*slog.Logger) *usecase.Dependencies, exitCode *int) *cobra.Command {
	var toleranceMS int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the probe against an independent reading",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := setupLogger(false)
			deps := depsFactory(logger)

			cfg, err := loadRuntimeConfig(cmd.Context(), deps)
			if err != nil {
				handleCmdError(exitCode, err)
				return
			}
			if cmd.Flags().Changed("tolerance-ms") {
				cfg.ToleranceMS = toleranceMS
			}
			if cfg.ToleranceMS <= 0 {
				handleCmdError(exitCode,
					fmt.Errorf("tolerance must be positive, got %d ms: %w", cfg.ToleranceMS, usecase.ErrUsage))
				return
			}

			report, err := usecase.Check(cmd.Context(), cfg, deps, logger)
			if err != nil && !errors.Is(err, usecase.ErrMismatch) {
				handleCmdError(exitCode, err)
				return
			}

			verdict := "agree"
			if !report.Agrees {
				verdict = "DISAGREE"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "probe:     %v\nreference: %v\ndelta:     %v (tolerance %v)\nverdict:   %s\n",
				report.Probe, report.Reference, report.Delta, report.Tolerance, verdict)
			handleExitOnly(exitCode, err)
		},
	}

	cmd.Flags().IntVar(&toleranceMS, "tolerance-ms", 0, "allowed disagreement in milliseconds (overrides config)")

	return cmd
}

// handleExitOnly sets the exit code without printing: the mismatch detail is
// already part of the command output.
func handleExitOnly(exitCode *int, err error) {
	*exitCode = mapExitCode(err)
}
