package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/arumata/startwatch"
)

type fakeProbe struct {
	m        startwatch.Measurement
	err      error
	tickRate int64
	calls    int
}

func (f *fakeProbe) Measure() (startwatch.Measurement, error) {
	f.calls++
	return f.m, f.err
}

func (f *fakeProbe) TickRate() int64 { return f.tickRate }

type fakeConfig struct {
	file    ConfigFile
	exists  bool
	loadErr error
	saveErr error
	statErr error
	saved   map[string]ConfigFile
}

func (f *fakeConfig) Load(_ context.Context, _ string) (ConfigFile, error) {
	if f.loadErr != nil {
		return ConfigFile{}, f.loadErr
	}
	return f.file, nil
}

func (f *fakeConfig) Save(_ context.Context, path string, cfg ConfigFile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = map[string]ConfigFile{}
	}
	f.saved[path] = cfg
	return nil
}

func (f *fakeConfig) Exists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.statErr
}

type fakeCross struct {
	elapsed time.Duration
	err     error
}

func (f *fakeCross) ElapsedSinceCreation(_ context.Context) (time.Duration, error) {
	return f.elapsed, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
