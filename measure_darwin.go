//go:build darwin

package startwatch

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// measure reads the process creation time from the kernel's BSD per-process
// info structure and differences it against gettimeofday. Both values carry
// explicit seconds and microseconds, so they share a clock domain.
func measure() (Measurement, error) {
	info, err := unix.SysctlKinfoProc("kern.proc.pid", os.Getpid())
	if err != nil {
		return Measurement{}, fmt.Errorf("sysctl kern.proc.pid: %v: %w", err, ErrProbe)
	}
	if info == nil {
		return Measurement{}, fmt.Errorf("sysctl kern.proc.pid: empty result: %w", ErrProbe)
	}
	tv := info.Proc.P_starttime
	start := float64(tv.Sec) + float64(tv.Usec)/1e6

	var now unix.Timeval
	if err := unix.Gettimeofday(&now); err != nil {
		return Measurement{}, fmt.Errorf("gettimeofday: %v: %w", err, ErrProbe)
	}
	nowSec := float64(now.Sec) + float64(now.Usec)/1e6

	return Measurement{
		Elapsed:      secondsToDuration(nowSec - start),
		StartSeconds: start,
		NowSeconds:   nowSec,
		Strategy:     StrategyBSDInfo,
	}, nil
}

// TickRate is not meaningful for the BSD info strategy.
func TickRate() int64 {
	return 0
}
