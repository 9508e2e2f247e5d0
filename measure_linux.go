//go:build linux

package startwatch

import (
	"fmt"
	"os"

	"github.com/tklauser/go-sysconf"
)

// Overridable for fault-injection tests.
var (
	statPath   = "/proc/self/stat"
	uptimePath = "/proc/uptime"
)

// Scheduler tick rate. Historically 100 Hz, driven by the kernel's periodic
// scheduling interrupt, which caps this strategy's resolution at about 10 ms.
var clockTicks = func() int64 {
	if t, err := sysconf.Sysconf(sysconf.SC_CLK_TCK); err == nil && t > 0 {
		return t
	}
	return 100
}()

// measure derives elapsed time from the start-tick field of /proc/self/stat
// and total kernel uptime from /proc/uptime. Both reads close their handle
// on every path; a failed stat probe skips the uptime probe entirely.
func measure() (Measurement, error) {
	stat, err := os.ReadFile(statPath)
	if err != nil {
		return Measurement{}, fmt.Errorf("read %s: %v: %w", statPath, err, ErrProbe)
	}
	ticks, err := parseStartTicks(stat)
	if err != nil {
		return Measurement{}, fmt.Errorf("decode %s: %v: %w", statPath, err, ErrMalformed)
	}

	up, err := os.ReadFile(uptimePath)
	if err != nil {
		return Measurement{}, fmt.Errorf("read %s: %v: %w", uptimePath, err, ErrProbe)
	}
	uptime, err := parseUptimeSeconds(up)
	if err != nil {
		return Measurement{}, fmt.Errorf("decode %s: %v: %w", uptimePath, err, ErrMalformed)
	}

	start := float64(ticks) / float64(clockTicks)
	return Measurement{
		Elapsed:      secondsToDuration(uptime - start),
		StartSeconds: start,
		NowSeconds:   uptime,
		Strategy:     StrategyTicks,
	}, nil
}

// TickRate reports the scheduler tick rate used to convert the start-tick
// field to seconds.
func TickRate() int64 {
	return clockTicks
}
