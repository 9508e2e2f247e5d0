package usecase

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigPath returns the config file location under the user's home dir.
func ConfigPath(homeDir string) (string, error) {
	if strings.TrimSpace(homeDir) == "" {
		return "", fmt.Errorf("home dir is empty: %w", ErrCritical)
	}
	return filepath.Join(homeDir, ".config", "startwatch", "config.toml"), nil
}

// RuntimeConfigFromFile converts file configuration to runtime Config,
// validating values the TOML decoder cannot.
func RuntimeConfigFromFile(file ConfigFile) (*Config, error) {
	format := strings.TrimSpace(file.Output.Format)
	if format == "" {
		format = FormatSeconds
	}
	switch format {
	case FormatSeconds, FormatMillis, FormatHuman:
	default:
		return nil, fmt.Errorf("output.format %q is not one of seconds, millis, human: %w", format, ErrUsage)
	}

	precision := file.Output.Precision
	if precision < 0 || precision > 9 {
		return nil, fmt.Errorf("output.precision %d is out of range 0..9: %w", precision, ErrUsage)
	}

	tolerance := file.Check.ToleranceMS
	if tolerance <= 0 {
		tolerance = DefaultConfigFile().Check.ToleranceMS
	}

	level := strings.ToLower(strings.TrimSpace(file.Logging.Level))
	if level == "" {
		level = DefaultConfigFile().Logging.Level
	}

	return &Config{
		Quiet:       file.Diagnostics.Quiet,
		Format:      format,
		Precision:   precision,
		ToleranceMS: tolerance,
		LogLevel:    level,
	}, nil
}
