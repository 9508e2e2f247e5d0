// Package startwatch measures the time elapsed between operating-system
// process creation and the moment the measurement is taken. Calling it as
// the first statement of main captures startup overhead that in-process
// timers cannot see: loader activity, shared library loading, and static
// initialization all happen before the program's own code starts running.
//
// The measurement is a single pair of kernel queries and a subtraction.
// Each call re-runs both queries, so this is not a general-purpose timer;
// the intended pattern is one call, at the top of main.
//
// Exactly one platform strategy is compiled into the binary, selected with
// build tags. There is no runtime dispatch and no state kept between calls.
package startwatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Strategy identifies which kernel interface produced a Measurement.
type Strategy string

const (
	// StrategyAccounting reads the process creation timestamp from the
	// kernel process-accounting query (Windows FILETIME pair).
	StrategyAccounting Strategy = "accounting"
	// StrategyTicks derives creation time from the scheduler-tick start
	// field in /proc/self/stat against kernel uptime (Linux).
	StrategyTicks Strategy = "ticks"
	// StrategyBSDInfo reads the BSD per-process info structure via sysctl
	// (macOS).
	StrategyBSDInfo Strategy = "bsdinfo"
	// StrategyNone means the platform has no supported strategy.
	StrategyNone Strategy = "none"
)

// Sentinel errors wrapped by Measure. ErrProbe means the kernel query
// itself failed; ErrMalformed means the query returned data that could not
// be decoded; ErrUnsupported means no strategy exists for this platform.
var (
	ErrProbe       = errors.New("probe failed")
	ErrMalformed   = errors.New("probe data malformed")
	ErrUnsupported = errors.New("unsupported platform")
)

// Measurement is the result of one probe pass. StartSeconds and NowSeconds
// are both expressed in the platform clock domain: seconds since the epoch
// on Windows and macOS, seconds since kernel boot on Linux. They are kept
// so callers can see the raw endpoints, not just the difference.
type Measurement struct {
	Elapsed      time.Duration
	StartSeconds float64
	NowSeconds   float64
	Strategy     Strategy
}

// Seconds returns the elapsed time as floating-point seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Measure runs the platform probe pair and returns the elapsed time since
// process creation. Unlike Elapsed it distinguishes a failed probe from a
// measurement that is legitimately zero, and it never writes diagnostics.
// On unsupported platforms it returns ErrUnsupported.
func Measure() (Measurement, error) {
	return measure()
}

// Elapsed returns the seconds elapsed since process creation, or 0.0 when
// the measurement is unavailable. On a probe failure exactly one diagnostic
// line describing the failing call is sent to the configured Reporter; on
// an unsupported platform nothing is reported. This keeps the original
// numeric contract where 0.0 doubles as "unknown" - callers that need to
// tell the two apart should use Measure.
func Elapsed() float64 {
	return elapsedValue(Measure())
}

func elapsedValue(m Measurement, err error) float64 {
	if err != nil {
		if !errors.Is(err, ErrUnsupported) {
			reporter.Report(fmt.Sprintf("startwatch: %v", err))
		}
		return 0.0
	}
	return m.Seconds()
}

// Reporter receives one-line diagnostics when a probe fails. Implementations
// must be safe for use from any goroutine if Elapsed is called from more
// than one, though the intended use is a single call at program start.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) { f(msg) }

// Discard is a Reporter that drops all diagnostics, for silent operation.
var Discard Reporter = ReporterFunc(func(string) {})

// NewWriterReporter returns a Reporter that writes one line per diagnostic
// to w. The default package reporter is NewWriterReporter(os.Stderr).
func NewWriterReporter(w io.Writer) Reporter {
	return ReporterFunc(func(msg string) {
		fmt.Fprintln(w, msg)
	})
}

var reporter = NewWriterReporter(os.Stderr)

// SetReporter replaces the package diagnostic sink. Pass Discard to silence
// failures entirely. A nil r restores Discard as well. Swap the reporter
// before the first measurement; the package does not synchronize the swap.
func SetReporter(r Reporter) {
	if r == nil {
		r = Discard
	}
	reporter = r
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
