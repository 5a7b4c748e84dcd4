package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/winfocus/internal/focus"
	"github.com/1broseidon/winfocus/internal/platform"
)

// useFakeBackend routes openSession to an in-memory window system and
// returns a --path argument pointing at a config file that does not exist.
func useFakeBackend(t *testing.T, windows ...platform.Window) (*platform.Fake, string) {
	t.Helper()
	fake := platform.NewFake(windows...)
	orig := newBackend
	newBackend = func() (platform.Backend, func(), error) {
		return fake, func() {}, nil
	}
	t.Cleanup(func() { newBackend = orig })
	return fake, "--path=" + filepath.Join(t.TempDir(), "config.yaml")
}

func exampleWindows() []platform.Window {
	return []platform.Window{
		{Handle: 111, Title: "Editor - notes.txt"},
		{Handle: 222, Title: "Editor"},
		{Handle: 333, Title: "Terminal"},
	}
}

func TestRunFocus(t *testing.T) {
	fake, path := useFakeBackend(t, exampleWindows()...)
	var stdout, stderr bytes.Buffer

	if code := runFocus([]string{path, "Editor (222)"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runFocus exit = %d, stderr = %q", code, stderr.String())
	}
	fronted := fake.Fronted()
	if len(fronted) != 1 || fronted[0] != 222 {
		t.Fatalf("expected 222 fronted, got %v", fronted)
	}
}

func TestRunFocus_JoinsUnquotedWords(t *testing.T) {
	fake, path := useFakeBackend(t, exampleWindows()...)
	var stdout, stderr bytes.Buffer

	if code := runFocus([]string{path, "Editor", "-", "notes"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runFocus exit = %d, stderr = %q", code, stderr.String())
	}
	if fronted := fake.Fronted(); len(fronted) != 1 || fronted[0] != 111 {
		t.Fatalf("expected 111 fronted, got %v", fronted)
	}
}

func TestRunFocus_MissPrintsHints(t *testing.T) {
	fake, path := useFakeBackend(t, exampleWindows()...)
	var stdout, stderr bytes.Buffer

	if code := runFocus([]string{path, "Trml"}, &stdout, &stderr); code != 1 {
		t.Fatalf("runFocus exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Terminal (333)") {
		t.Fatalf("expected hint in stderr, got %q", stderr.String())
	}
	if len(fake.Fronted()) != 0 {
		t.Fatalf("expected no activation on miss")
	}
}

func TestRunFocus_Usage(t *testing.T) {
	_, path := useFakeBackend(t)
	var stdout, stderr bytes.Buffer

	if code := runFocus([]string{path}, &stdout, &stderr); code != 2 {
		t.Fatalf("runFocus without query exit = %d, want 2", code)
	}
	if code := runFocus([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runFocus -h exit = %d, want 0", code)
	}
}

func TestRunResolve(t *testing.T) {
	_, path := useFakeBackend(t, exampleWindows()...)

	tests := []struct {
		args []string
		code int
		out  string
	}{
		{[]string{path, "333"}, 0, "333\n"},
		{[]string{path, "-v", "^Editor"}, 0, "111\tpattern\n"},
		{[]string{path, "999"}, 1, ""},
		{[]string{path, "["}, 1, ""},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		code := runResolve(tt.args, &stdout, &stderr)
		if code != tt.code || stdout.String() != tt.out {
			t.Errorf("runResolve(%v) = %d %q, want %d %q", tt.args, code, stdout.String(), tt.code, tt.out)
		}
	}
}

func TestRunComplete(t *testing.T) {
	_, path := useFakeBackend(t, exampleWindows()...)
	var stdout, stderr bytes.Buffer

	if code := runComplete([]string{path, "--scores", "Editor"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runComplete exit = %d, stderr = %q", code, stderr.String())
	}
	want := "950\tEditor (222)\n750\tEditor - notes.txt (111)\n"
	if stdout.String() != want {
		t.Fatalf("runComplete output = %q, want %q", stdout.String(), want)
	}

	stdout.Reset()
	if code := runComplete([]string{path, "--limit", "1", "Editor"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runComplete --limit exit = %d", code)
	}
	if stdout.String() != "Editor (222)\n" {
		t.Fatalf("runComplete --limit output = %q", stdout.String())
	}

	if code := runComplete([]string{path, "--limit", "-1", "Editor"}, &stdout, &stderr); code != 2 {
		t.Fatalf("negative limit exit = %d, want 2", code)
	}
}

func TestRunList_JSON(t *testing.T) {
	_, path := useFakeBackend(t, exampleWindows()...)
	var stdout, stderr bytes.Buffer

	if code := runList([]string{path, "--json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("runList exit = %d, stderr = %q", code, stderr.String())
	}
	var got []focus.WindowRecord
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout.String(), err)
	}
	if len(got) != 3 || got[2].Handle != 333 || got[2].Title != "Terminal" {
		t.Fatalf("unexpected windows %+v", got)
	}
}

func TestPrintWindows_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printWindows(&buf, nil, true); err != nil {
		t.Fatalf("printWindows: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected [], got %q", buf.String())
	}
}

func TestRunConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("completion:\n  max_results: 5\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := runConfigCommand("validate", []string{"--path", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("validate exit = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "config: ok") {
		t.Fatalf("unexpected validate output %q", stdout.String())
	}

	stdout.Reset()
	if code := runConfigCommand("print", []string{"--path", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("print exit = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "max_results: 5") {
		t.Fatalf("expected override in printed config, got %q", stdout.String())
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("nope: true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	stderr.Reset()
	if code := runConfigCommand("validate", []string{"--path", bad}, &stdout, &stderr); code != 1 {
		t.Fatalf("validate of unknown key exit = %d, want 1", code)
	}

	if code := runConfigCommand("explode", nil, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown config command exit = %d, want 2", code)
	}
}
