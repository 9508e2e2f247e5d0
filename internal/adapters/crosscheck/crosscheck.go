// Package crosscheck provides an independent elapsed-since-creation reading
// through gopsutil, used to validate the platform probe.
package crosscheck

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Adapter implements CrossCheckPort using gopsutil process information.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new crosscheck adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("crosscheck adapter requires logger")
	}
	return &Adapter{logger: logger}
}

// ElapsedSinceCreation reads this process's creation time from gopsutil and
// differences it against the wall clock. gopsutil resolves creation time
// through its own per-platform paths, so agreement with the probe is a
// meaningful signal.
func (a *Adapter) ElapsedSinceCreation(ctx context.Context) (time.Duration, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("open process info: %w", err)
	}
	createdMS, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read process creation time: %w", err)
	}
	elapsed := time.Since(time.UnixMilli(createdMS))
	a.logger.Debug("Reference creation time read", "created_ms", createdMS, "elapsed", elapsed)
	return elapsed, nil
}
