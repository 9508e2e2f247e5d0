//go:build !linux && !darwin && !windows

package startwatch

// measure has no strategy for this platform. No probe runs and no
// diagnostic is emitted; Elapsed reports 0.0 unconditionally.
func measure() (Measurement, error) {
	return Measurement{Strategy: StrategyNone}, ErrUnsupported
}

// TickRate is not meaningful without a strategy.
func TickRate() int64 {
	return 0
}
