package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, err := New(Config{Level: LevelWarn})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "Warning: warn 3") {
		t.Fatalf("expected warning line, got %q", out)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger
	l.Infof("ignored")
	l.Log(ActionFocus, map[string]interface{}{"handle": 1})
	if err := l.Close(); err != nil {
		t.Fatalf("Close on nil logger: %v", err)
	}
}

func TestLogger_ActivityFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "activity.log")
	l, err := New(Config{Level: LevelInfo, FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Log(ActionFocus, map[string]interface{}{"handle": uint64(42), "query": "term"})
	l.Log(ActionComplete, map[string]interface{}{"partial": "t"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `[FOCUS] handle=42 query="term"`) {
		t.Fatalf("unexpected log contents %q", out)
	}
	if !strings.Contains(out, `[COMPLETE] partial="t"`) {
		t.Fatalf("expected COMPLETE regardless of diagnostic level, got %q", out)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestLogger_Rotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l, err := New(Config{Level: LevelDebug, FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.currentSize = 1024 * 1024 // force rotation on next write
	l.Log(ActionMiss, map[string]interface{}{"query": "x"})

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if l.currentSize == 0 {
		t.Fatalf("expected new entry to be counted after rotation")
	}
}

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := formatEntry(ts, ActionResolve, map[string]interface{}{
		"strategy": "literal",
		"handle":   7,
	})
	want := "2026-01-02 03:04:05 [RESOLVE] handle=7 strategy=\"literal\"\n"
	if got != want {
		t.Fatalf("formatEntry = %q, want %q", got, want)
	}
}
