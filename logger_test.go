package kernel

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	l.Info("should not panic or print anywhere visible")
}

func TestSetLoggerRoundTrip(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, nil)
	SetLogger(slog.New(h))

	Logger().Warn("test warning")
	if buf.Len() == 0 {
		t.Fatal("expected SetLogger to route output through the new handler")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)
	Logger().Error("should be discarded")
	if buf.Len() != 0 {
		t.Fatalf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}
