//go:build windows

package startwatch

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// measure reads the process creation FILETIME from the kernel accounting
// query and differences it against the system clock read as a FILETIME.
// CurrentProcess returns a pseudo-handle, so nothing needs closing.
func measure() (Measurement, error) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return Measurement{}, fmt.Errorf("GetProcessTimes: %v: %w", err, ErrProbe)
	}
	start := filetimeSeconds(creation.LowDateTime, creation.HighDateTime)

	var now windows.Filetime
	windows.GetSystemTimeAsFileTime(&now)
	nowSec := filetimeSeconds(now.LowDateTime, now.HighDateTime)

	return Measurement{
		Elapsed:      secondsToDuration(nowSec - start),
		StartSeconds: start,
		NowSeconds:   nowSec,
		Strategy:     StrategyAccounting,
	}, nil
}

// TickRate is not meaningful for the accounting strategy.
func TickRate() int64 {
	return 0
}
