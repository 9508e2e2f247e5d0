package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arumata/startwatch/internal/usecase"
)

// Adapter implements ConfigPort using TOML files on disk.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new config adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("config adapter requires logger")
	}
	return &Adapter{logger: logger}
}

// Load reads config from path or returns defaults when file is missing.
func (a *Adapter) Load(ctx context.Context, path string) (usecase.ConfigFile, error) {
	_ = ctx
	if strings.TrimSpace(path) == "" {
		return usecase.ConfigFile{}, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is controlled by usecase
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return usecase.DefaultConfigFile(), nil
		}
		return usecase.ConfigFile{}, err
	}

	cfg := usecase.DefaultConfigFile()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return usecase.ConfigFile{}, fmt.Errorf("parse config toml: %w", err)
	}

	return cfg, nil
}

// Save writes config to path in TOML format with inline documentation.
func (a *Adapter) Save(ctx context.Context, path string, cfg usecase.ConfigFile) error {
	_ = ctx
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content := renderCommentedTOML(cfg)

	// #nosec G306 G304 - config is not secret, path is controlled by usecase.
	return os.WriteFile(path, []byte(content), 0o644)
}

// Exists reports whether a config file is present at path.
func (a *Adapter) Exists(ctx context.Context, path string) (bool, error) {
	_ = ctx
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, errors.New("config path is a directory")
	}
	return true, nil
}

func renderCommentedTOML(cfg usecase.ConfigFile) string {
	return fmt.Sprintf(`# Startwatch Configuration

# ── Output ───────────────────────────────────────────────────────
[output]

# How the measured startup time is printed:
#   seconds - floating-point seconds (default)
#   millis  - floating-point milliseconds
#   human   - Go duration string, e.g. 12.7ms
format = %[1]q

# Decimal places for seconds/millis formats (0..9).
precision = %[2]d

# ── Diagnostics ──────────────────────────────────────────────────
[diagnostics]

# Suppress probe failure diagnostics (silent zero on failure).
quiet = %[3]t

# ── Cross-check ──────────────────────────────────────────────────
[check]

# Allowed disagreement between the probe and the reference reading,
# in milliseconds. Coarse-tick platforms round to the scheduler
# interval, so keep some slack.
tolerance_ms = %[4]d

# ── Logging ──────────────────────────────────────────────────────
[logging]

# Minimum log level: debug, info, warn, error.
level = %[5]q
`,
		cfg.Output.Format,
		cfg.Output.Precision,
		cfg.Diagnostics.Quiet,
		cfg.Check.ToleranceMS,
		cfg.Logging.Level,
	)
}
