package usecase

// ConfigFile describes TOML configuration structure.
type ConfigFile struct {
	Output      OutputConfig      `toml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Check       CheckConfig       `toml:"check"`
	Logging     LoggingConfig     `toml:"logging"`
}

// OutputConfig holds measurement output settings.
type OutputConfig struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
}

// DiagnosticsConfig holds probe diagnostic settings.
type DiagnosticsConfig struct {
	Quiet bool `toml:"quiet"`
}

// CheckConfig holds cross-check settings.
type CheckConfig struct {
	ToleranceMS int `toml:"tolerance_ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfigFile returns default TOML configuration.
func DefaultConfigFile() ConfigFile {
	return ConfigFile{
		Output: OutputConfig{
			Format:    FormatSeconds,
			Precision: 6,
		},
		Diagnostics: DiagnosticsConfig{
			Quiet: false,
		},
		Check: CheckConfig{
			ToleranceMS: 250,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
