package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CheckReport compares the platform probe against an independent reading of
// elapsed time since process creation.
type CheckReport struct {
	Probe     time.Duration
	Reference time.Duration
	Delta     time.Duration
	Tolerance time.Duration
	Agrees    bool
}

// Check validates the probe against the cross-check source. The comparison
// is inherently noisy: the two readings are taken at different instants and
// coarse-tick platforms round to the scheduler interval, hence a tolerance.
func Check(ctx context.Context, cfg *Config, deps *Dependencies, logger *slog.Logger) (CheckReport, error) {
	if deps == nil || deps.Probe == nil || deps.Cross == nil {
		return CheckReport{}, fmt.Errorf("dependencies not available: %w", ErrCritical)
	}

	m, err := deps.Probe.Measure()
	if err != nil {
		return CheckReport{}, fmt.Errorf("measure startup time: %v: %w", err, ErrProbeFailed)
	}
	ref, err := deps.Cross.ElapsedSinceCreation(ctx)
	if err != nil {
		return CheckReport{}, fmt.Errorf("cross-check elapsed time: %v: %w", err, ErrProbeFailed)
	}

	delta := m.Elapsed - ref
	if delta < 0 {
		delta = -delta
	}
	tolerance := time.Duration(cfg.ToleranceMS) * time.Millisecond

	report := CheckReport{
		Probe:     m.Elapsed,
		Reference: ref,
		Delta:     delta,
		Tolerance: tolerance,
		Agrees:    delta <= tolerance,
	}
	logger.Debug("Cross-check complete",
		"probe", report.Probe,
		"reference", report.Reference,
		"delta", report.Delta,
		"tolerance", report.Tolerance,
	)
	if !report.Agrees {
		return report, fmt.Errorf("probe %v and reference %v differ by %v (tolerance %v): %w",
			report.Probe, report.Reference, report.Delta, report.Tolerance, ErrMismatch)
	}
	return report, nil
}
