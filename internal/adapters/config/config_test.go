package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/arumata/startwatch/internal/usecase"
)

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := New(slog.Default())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := usecase.DefaultConfigFile()
	want.Output.Format = usecase.FormatMillis
	want.Output.Precision = 2
	want.Diagnostics.Quiet = true
	want.Check.ToleranceMS = 500
	want.Logging.Level = "debug"

	if err := adapter.Save(ctx, path, want); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, err := adapter.Load(ctx, path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestAdapter_LoadMissingReturnsDefaults(t *testing.T) {
	adapter := New(slog.Default())
	got, err := adapter.Load(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != usecase.DefaultConfigFile() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestAdapter_LoadEmptyPath(t *testing.T) {
	adapter := New(slog.Default())
	if _, err := adapter.Load(context.Background(), "  "); err == nil {
		t.Fatal("expected error")
	}
}

func TestAdapter_Exists(t *testing.T) {
	ctx := context.Background()
	adapter := New(slog.Default())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	exists, err := adapter.Exists(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config")
	}

	if err := adapter.Save(ctx, path, usecase.DefaultConfigFile()); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	exists, err = adapter.Exists(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected config to exist")
	}

	if _, err := adapter.Exists(ctx, dir); err == nil {
		t.Fatal("expected error for directory path")
	}
}
