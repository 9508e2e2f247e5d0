package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arumata/startwatch"
)

func TestStatus_Report(t *testing.T) {
	deps := &Dependencies{
		Probe: &fakeProbe{
			m: startwatch.Measurement{
				Elapsed:  2 * time.Second,
				Strategy: startwatch.StrategyTicks,
			},
			tickRate: 100,
		},
		Config: &fakeConfig{file: DefaultConfigFile(), exists: true},
	}
	report, err := Status(context.Background(), StatusOptions{HomeDir: "/home/test"}, deps, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Strategy != string(startwatch.StrategyTicks) {
		t.Fatalf("unexpected strategy: %q", report.Strategy)
	}
	if report.TickRate != 100 {
		t.Fatalf("unexpected tick rate: %d", report.TickRate)
	}
	if !report.ConfigExists {
		t.Fatal("expected config to exist")
	}
	if report.ConfigPath != "/home/test/.config/startwatch/config.toml" {
		t.Fatalf("unexpected config path: %q", report.ConfigPath)
	}
	if report.Measurement.Elapsed != 2*time.Second {
		t.Fatalf("unexpected measurement: %+v", report.Measurement)
	}
}

func TestStatus_ProbeFailureDoesNotAbort(t *testing.T) {
	deps := &Dependencies{
		Probe:  &fakeProbe{err: startwatch.ErrProbe},
		Config: &fakeConfig{file: DefaultConfigFile()},
	}
	report, err := Status(context.Background(), StatusOptions{HomeDir: "/home/test"}, deps, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.MeasureError == "" {
		t.Fatal("expected measure error to be recorded")
	}
}

func TestStatus_Unsupported(t *testing.T) {
	deps := &Dependencies{
		Probe:  &fakeProbe{err: startwatch.ErrUnsupported},
		Config: &fakeConfig{file: DefaultConfigFile()},
	}
	report, err := Status(context.Background(), StatusOptions{HomeDir: "/home/test"}, deps, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Strategy != string(startwatch.StrategyNone) {
		t.Fatalf("unexpected strategy: %q", report.Strategy)
	}
}

func TestStatus_EmptyHome(t *testing.T) {
	deps := &Dependencies{
		Probe:  &fakeProbe{},
		Config: &fakeConfig{},
	}
	_, err := Status(context.Background(), StatusOptions{}, deps, testLogger())
	if !errors.Is(err, ErrCritical) {
		t.Fatalf("expected critical error, got %v", err)
	}
}
