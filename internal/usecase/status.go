package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arumata/startwatch"
)

// StatusReport collects everything the status command shows: the platform
// strategy, its parameters, the current configuration, and a fresh reading.
type StatusReport struct {
	Platform     string
	Strategy     string
	TickRate     int64
	ConfigPath   string
	ConfigExists bool
	Config       ConfigFile
	Measurement  startwatch.Measurement
	MeasureError string
}

// StatusOptions controls Status behavior.
type StatusOptions struct {
	HomeDir string
}

// Status gathers the status report. A failed probe is reported inside the
// status output rather than aborting, so the command still shows platform
// and configuration detail on a broken system.
func Status(ctx context.Context, opts StatusOptions, deps *Dependencies, logger *slog.Logger) (StatusReport, error) {
	if deps == nil || deps.Probe == nil || deps.Config == nil {
		return StatusReport{}, fmt.Errorf("dependencies not available: %w", ErrCritical)
	}

	configPath, err := ConfigPath(opts.HomeDir)
	if err != nil {
		return StatusReport{}, err
	}
	exists, err := deps.Config.Exists(ctx, configPath)
	if err != nil {
		return StatusReport{}, fmt.Errorf("stat config: %v: %w", err, ErrCritical)
	}
	cfg, err := deps.Config.Load(ctx, configPath)
	if err != nil {
		return StatusReport{}, fmt.Errorf("load config: %v: %w", err, ErrCritical)
	}

	report := StatusReport{
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		TickRate:     deps.Probe.TickRate(),
		ConfigPath:   configPath,
		ConfigExists: exists,
		Config:       cfg,
	}

	m, merr := deps.Probe.Measure()
	switch {
	case errors.Is(merr, startwatch.ErrUnsupported):
		report.Strategy = string(startwatch.StrategyNone)
		report.MeasureError = "unsupported platform"
	case merr != nil:
		report.MeasureError = merr.Error()
		logger.Warn("Probe failed while gathering status", "error", merr)
	default:
		report.Strategy = string(m.Strategy)
		report.Measurement = m
	}

	return report, nil
}
