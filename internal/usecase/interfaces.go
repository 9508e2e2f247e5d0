package usecase

import (
	"context"
	"time"

	"github.com/arumata/startwatch"
)

// Dependencies represents all external dependencies needed by use cases
type Dependencies struct {
	Probe  ProbePort
	Config ConfigPort
	Cross  CrossCheckPort
}

// Ports define the interfaces that use cases need (hexagonal architecture)

// ProbePort exposes the platform startup-time measurement.
type ProbePort interface {
	// Measure takes one measurement. Errors match the startwatch sentinels:
	// ErrProbe, ErrMalformed, ErrUnsupported.
	Measure() (startwatch.Measurement, error)

	// TickRate reports the scheduler tick rate, or 0 when the strategy
	// does not use ticks.
	TickRate() int64
}

// ConfigPort defines configuration operations needed by use cases
type ConfigPort interface {
	Load(ctx context.Context, path string) (ConfigFile, error)
	Save(ctx context.Context, path string, cfg ConfigFile) error
	Exists(ctx context.Context, path string) (bool, error)
}

// CrossCheckPort provides an independent reading of elapsed time since
// process creation, used to validate the probe.
type CrossCheckPort interface {
	ElapsedSinceCreation(ctx context.Context) (time.Duration, error)
}
