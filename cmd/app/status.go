package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arumata/startwatch/internal/usecase"
)

func newStatusCmd(depsFactory func(*slog.Logger) *usecase.Dependencies, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show platform strategy and configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := setupLogger(false)
			deps := depsFactory(logger)
			homeDir, err := os.UserHomeDir()
			if err != nil {
				handleCmdError(exitCode, fmt.Errorf("resolve home dir: %w", usecase.ErrCritical))
				return
			}
			report, err := usecase.Status(cmd.Context(), usecase.StatusOptions{HomeDir: homeDir}, deps, logger)
			if err != nil {
				handleCmdError(exitCode, err)
				return
			}
			renderStatus(report)
			*exitCode = exitSuccess
		},
	}
}

func renderStatus(report usecase.StatusReport) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	table.Append([]string{"Platform", report.Platform})
	table.Append([]string{"Strategy", report.Strategy})
	if report.TickRate > 0 {
		table.Append([]string{"Tick rate", strconv.FormatInt(report.TickRate, 10) + " Hz"})
	}
	table.Append([]string{"Config file", report.ConfigPath})
	configState := "missing (using defaults)"
	if report.ConfigExists {
		configState = "present"
	}
	table.Append([]string{"Config state", configState})
	table.Append([]string{"Output format", report.Config.Output.Format})
	table.Append([]string{"Output precision", strconv.Itoa(report.Config.Output.Precision)})
	table.Append([]string{"Quiet diagnostics", strconv.FormatBool(report.Config.Diagnostics.Quiet)})
	table.Append([]string{"Check tolerance", strconv.Itoa(report.Config.Check.ToleranceMS) + " ms"})

	if report.MeasureError != "" {
		table.Append([]string{"Measurement", "failed: " + report.MeasureError})
	} else {
		table.Append([]string{"Startup time", report.Measurement.Elapsed.String()})
	}

	table.Render()
}
