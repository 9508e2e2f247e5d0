package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"github.com/arumata/startwatch"
	"github.com/arumata/startwatch/internal/adapters/loghandler"
	"github.com/arumata/startwatch/internal/app"
	"github.com/arumata/startwatch/internal/usecase"
)

func main() {
	// The measurement must be the first statement: everything after it,
	// including flag parsing, would inflate the reported startup time.
	m, merr := startwatch.Measure()
	os.Exit(runMain(m, merr))
}

func runMain(m startwatch.Measurement, merr error) int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cmd, exitCode := newRootCmd(m, merr, app.NewDefaultDependencies, usecase.Report)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsageError
	}
	return *exitCode
}

type rootFlags struct {
	verbose   bool
	quiet     bool
	format    string
	precision int
}

func newRootCmd(
	m startwatch.Measurement,
	merr error,
	depsFactory func(*slog.Logger) *usecase.Dependencies,
	report func(startwatch.Measurement, error, *usecase.Config, *slog.Logger) (string, error),
) (*cobra.Command, *int) {
	exitCode := 0
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "startwatch",
		Short:         "Measure time elapsed since process creation",
		SilenceUsage:  false,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitCode = runRootCommand(cmd, m, merr, flags, depsFactory, report)
		},
	}
	cmd.SetErr(os.Stderr)

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress probe failure diagnostics")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: seconds, millis, human")
	cmd.Flags().IntVar(&flags.precision, "precision", -1, "decimal places for numeric formats (0..9)")

	cmd.AddCommand(newStatusCmd(depsFactory, &exitCode))
	cmd.AddCommand(newCheckCmd(depsFactory, &exitCode))
	cmd.AddCommand(newInitCmd(depsFactory, &exitCode))
	cmd.AddCommand(newVersionCmd())

	return cmd, &exitCode
}

func runRootCommand(
	cmd *cobra.Command,
	m startwatch.Measurement,
	merr error,
	flags *rootFlags,
	depsFactory func(*slog.Logger) *usecase.Dependencies,
	report func(startwatch.Measurement, error, *usecase.Config, *slog.Logger) (string, error),
) int {
	bootLogger := setupLogger(flags.verbose)

	cfg, err := loadRuntimeConfig(cmd.Context(), depsFactory(bootLogger))
	if err != nil {
		return mapExitCodeWithLog(err)
	}
	applyRootFlags(cfg, flags, cmd)

	level := parseLogLevel(cfg.LogLevel)
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := loggerAt(level)

	value, err := report(m, merr, cfg, logger)
	if err != nil {
		if cfg.Quiet {
			return mapExitCode(err)
		}
		return mapExitCodeWithLog(err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), value); err != nil {
		return mapExitCodeWithLog(err)
	}
	return exitSuccess
}

func loadRuntimeConfig(ctx context.Context, deps *usecase.Dependencies) (*usecase.Config, error) {
	if deps == nil || deps.Config == nil {
		return nil, fmt.Errorf("dependencies not available: %w", usecase.ErrCritical)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %v: %w", err, usecase.ErrCritical)
	}
	configPath, err := usecase.ConfigPath(homeDir)
	if err != nil {
		return nil, err
	}
	file, err := deps.Config.Load(ctx, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %v: %w", err, usecase.ErrCritical)
	}
	return usecase.RuntimeConfigFromFile(file)
}

func applyRootFlags(cfg *usecase.Config, flags *rootFlags, cmd *cobra.Command) {
	cfg.Verbose = flags.verbose
	if flags.quiet {
		cfg.Quiet = true
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = flags.precision
	}
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return loggerAt(level)
}

func loggerAt(level slog.Level) *slog.Logger {
	handler := loghandler.NewHandler(os.Stderr, &loghandler.Options{
		Level:    level,
		UseColor: shouldUseColor(os.Stderr),
	})
	return slog.New(handler)
}

func shouldUseColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func mapExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, usecase.ErrUsage):
		return exitUsageError
	case errors.Is(err, usecase.ErrProbeFailed):
		return exitProbeFailure
	case errors.Is(err, usecase.ErrMismatch):
		return exitMismatch
	case errors.Is(err, usecase.ErrInterrupted):
		return exitInterrupted
	default:
		return exitCriticalError
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
