package app

import (
	"log/slog"
	"testing"
)

func TestNewDefaultDependencies(t *testing.T) {
	deps := NewDefaultDependencies(slog.Default())
	if deps.Probe == nil {
		t.Fatal("expected probe adapter")
	}
	if deps.Config == nil {
		t.Fatal("expected config adapter")
	}
	if deps.Cross == nil {
		t.Fatal("expected crosscheck adapter")
	}
}

func TestNewDefaultDependencies_NilLogger(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewDefaultDependencies(nil)
}
