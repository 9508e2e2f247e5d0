// Package probe adapts the startwatch library to the use-case ProbePort.
package probe

import (
	"log/slog"

	"github.com/arumata/startwatch"
)

// Adapter implements ProbePort over the platform measurement library.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new probe adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("probe adapter requires logger")
	}
	return &Adapter{logger: logger}
}

// Measure takes one startup-time measurement.
func (a *Adapter) Measure() (startwatch.Measurement, error) {
	return startwatch.Measure()
}

// TickRate reports the scheduler tick rate, 0 when the strategy has none.
func (a *Adapter) TickRate() int64 {
	return startwatch.TickRate()
}
