package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/arumata/startwatch"
)

// Report renders the startup measurement captured at the top of main.
// An unsupported platform degrades to a zero reading, matching the library
// contract; any other probe failure aborts with ErrProbeFailed.
func Report(m startwatch.Measurement, merr error, cfg *Config, logger *slog.Logger) (string, error) {
	if merr != nil {
		if errors.Is(merr, startwatch.ErrUnsupported) {
			logger.Warn("No startup measurement strategy for this platform, reporting zero")
			return FormatSecondsValue(0, cfg.Format, cfg.Precision), nil
		}
		return "", fmt.Errorf("measure startup time: %v: %w", merr, ErrProbeFailed)
	}

	logger.Debug("Startup measurement taken",
		"strategy", string(m.Strategy),
		"start_seconds", m.StartSeconds,
		"now_seconds", m.NowSeconds,
		"elapsed", m.Elapsed,
	)
	return FormatSecondsValue(m.Seconds(), cfg.Format, cfg.Precision), nil
}

// FormatSecondsValue renders elapsed seconds in the requested output format.
func FormatSecondsValue(seconds float64, format string, precision int) string {
	switch format {
	case FormatMillis:
		return strconv.FormatFloat(seconds*1000, 'f', precision, 64)
	case FormatHuman:
		d := time.Duration(seconds * float64(time.Second))
		return d.Round(time.Microsecond).String()
	default:
		return strconv.FormatFloat(seconds, 'f', precision, 64)
	}
}
