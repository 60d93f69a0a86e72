package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreInitLoggerUsesConfiguredHandler(t *testing.T) {
	logger := L("libinput")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger.Info("session opened", KeySeat, "seat0")

	out := buf.String()
	if !strings.Contains(out, `msg="session opened"`) {
		t.Fatalf("expected message, got: %s", out)
	}
	if !strings.Contains(out, "component=libinput") {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "seat=seat0") {
		t.Fatalf("expected seat field, got: %s", out)
	}
}

func TestPreInitLoggerRespectsConfiguredLevel(t *testing.T) {
	logger := L("libinput")

	var buf bytes.Buffer
	Init("text", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info log should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn log should be emitted: %s", out)
	}
}

func TestSetLevelAppliesWithoutReinit(t *testing.T) {
	var buf bytes.Buffer
	Init("text", "error", &buf)
	logger := L("privilege")

	logger.Debug("before")
	SetLevel("debug")
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Fatalf("debug log emitted at error level: %s", out)
	}
	if !strings.Contains(out, "after") {
		t.Fatalf("debug log missing after SetLevel: %s", out)
	}
}

func TestJSONFormatKeepsGroups(t *testing.T) {
	var buf bytes.Buffer
	Init("json", "info", &buf)

	L("render").WithGroup("event").Info("decoded", "kind", "keyboard-key")

	out := buf.String()
	if !strings.Contains(out, `"event":{"kind":"keyboard-key"}`) {
		t.Fatalf("expected grouped kind attr, got: %s", out)
	}
	if !strings.Contains(out, `"component":"render"`) {
		t.Fatalf("expected component attr, got: %s", out)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := NewContext(context.Background(), custom)
	if FromContext(ctx) != custom {
		t.Fatal("expected logger stored in context")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRotatingWriterRotatesPastLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "inputstream.log")
	w, err := NewRotatingWriter(path, 1, 2)
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	defer w.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for i := 0; i < 4; i++ {
		if _, err := w.Write(chunk); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	for _, name := range []string{path, path + ".1", path + ".2"} {
		if _, err := os.Stat(name); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Fatalf("expected at most 2 backups, stat .3 err = %v", err)
	}
}

func TestRotatingWriterClosedWrite(t *testing.T) {
	w, err := NewRotatingWriter(filepath.Join(t.TempDir(), "a.log"), 0, 0)
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Fatal("expected error writing after Close")
	}
	if err := w.Reopen(); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if _, err := w.Write([]byte("again")); err != nil {
		t.Fatalf("write after Reopen: %v", err)
	}
	w.Close()
}
