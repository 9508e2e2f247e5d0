package usecase

import (
	"errors"
	"testing"
)

func TestRuntimeConfigFromFile_Defaults(t *testing.T) {
	file := DefaultConfigFile()
	got, err := RuntimeConfigFromFile(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format != FormatSeconds {
		t.Fatalf("unexpected format: %s", got.Format)
	}
	if got.Precision != file.Output.Precision {
		t.Fatalf("unexpected precision: %d", got.Precision)
	}
	if got.Quiet != file.Diagnostics.Quiet {
		t.Fatalf("unexpected quiet flag: %t", got.Quiet)
	}
	if got.ToleranceMS != file.Check.ToleranceMS {
		t.Fatalf("unexpected tolerance: %d", got.ToleranceMS)
	}
}

func TestRuntimeConfigFromFile_EmptyFormatFallsBack(t *testing.T) {
	file := DefaultConfigFile()
	file.Output.Format = "  "
	got, err := RuntimeConfigFromFile(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format != FormatSeconds {
		t.Fatalf("unexpected format: %s", got.Format)
	}
}

func TestRuntimeConfigFromFile_BadFormat(t *testing.T) {
	file := DefaultConfigFile()
	file.Output.Format = "nanos"
	if _, err := RuntimeConfigFromFile(file); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRuntimeConfigFromFile_BadPrecision(t *testing.T) {
	for _, precision := range []int{-1, 10} {
		file := DefaultConfigFile()
		file.Output.Precision = precision
		if _, err := RuntimeConfigFromFile(file); !errors.Is(err, ErrUsage) {
			t.Fatalf("expected usage error for precision %d, got %v", precision, err)
		}
	}
}

func TestRuntimeConfigFromFile_NonPositiveToleranceFallsBack(t *testing.T) {
	file := DefaultConfigFile()
	file.Check.ToleranceMS = 0
	got, err := RuntimeConfigFromFile(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ToleranceMS != DefaultConfigFile().Check.ToleranceMS {
		t.Fatalf("unexpected tolerance: %d", got.ToleranceMS)
	}
}

func TestConfigPath_EmptyHome(t *testing.T) {
	if _, err := ConfigPath(""); !errors.Is(err, ErrCritical) {
		t.Fatalf("expected critical error, got %v", err)
	}
}
