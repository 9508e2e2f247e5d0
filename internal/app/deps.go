package app

import (
	"log/slog"

	"github.com/arumata/startwatch/internal/adapters/config"
	"github.com/arumata/startwatch/internal/adapters/crosscheck"
	"github.com/arumata/startwatch/internal/adapters/probe"
	"github.com/arumata/startwatch/internal/usecase"
)

// NewDefaultDependencies creates dependencies with real adapters.
func NewDefaultDependencies(logger *slog.Logger) *usecase.Dependencies {
	if logger == nil {
		panic("default dependencies require logger")
	}
	return &usecase.Dependencies{
		Probe:  probe.New(logger),
		Config: config.New(logger),
		Cross:  crosscheck.New(logger),
	}
}
