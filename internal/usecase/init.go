package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// InitOptions controls Init behavior.
type InitOptions struct {
	Force   bool
	HomeDir string
}

// Init writes the commented default config file. An existing file is only
// replaced with Force.
func Init(ctx context.Context, opts InitOptions, deps *Dependencies, logger *slog.Logger) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("dependencies not available: %w", ErrCritical)
	}

	configPath, err := ConfigPath(opts.HomeDir)
	if err != nil {
		return err
	}
	exists, err := deps.Config.Exists(ctx, configPath)
	if err != nil {
		return fmt.Errorf("stat config: %v: %w", err, ErrCritical)
	}
	if exists && !opts.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite): %w", configPath, ErrUsage)
	}

	if err := deps.Config.Save(ctx, configPath, DefaultConfigFile()); err != nil {
		return fmt.Errorf("write config: %v: %w", err, ErrCritical)
	}
	logger.Info("Wrote default configuration", "path", configPath)
	return nil
}
