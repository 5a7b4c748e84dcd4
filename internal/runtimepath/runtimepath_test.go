package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no uid on windows")
	}
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got == "" {
		t.Fatal("Dir() returned empty path")
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := filepath.Join(os.TempDir(), fmt.Sprintf("winfocus-runtime-%d", os.Getuid()))
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestActivityLogPath(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := ActivityLogPath()
	if err != nil {
		t.Fatalf("ActivityLogPath() error: %v", err)
	}
	want := filepath.Join(td, "winfocus", "activity.log")
	if got != want {
		t.Fatalf("ActivityLogPath() = %q, want %q", got, want)
	}
}

func withRunUserRoot(t *testing.T, root string) {
	t.Helper()
	prev := runUserRoot
	runUserRoot = root
	t.Cleanup(func() { runUserRoot = prev })
}

func TestDir_PrefersRunUserDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no uid on windows")
	}
	t.Setenv("XDG_RUNTIME_DIR", "")
	root := t.TempDir()
	withRunUserRoot(t, root)

	want := filepath.Join(root, strconv.Itoa(os.Getuid()))
	if err := os.Mkdir(want, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_CreatesPrivateTempFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fallback is shadowed by local app data on windows")
	}
	t.Setenv("XDG_RUNTIME_DIR", "")
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	withRunUserRoot(t, filepath.Join(tmp, "missing"))

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	want := filepath.Join(tmp, "winfocus-runtime-"+strconv.Itoa(os.Getuid()))
	if got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
	info, err := os.Stat(got)
	if err != nil {
		t.Fatalf("stat fallback: %v", err)
	}
	if !info.IsDir() || info.Mode().Perm() != 0o700 {
		t.Fatalf("fallback mode = %v, want dir 0700", info.Mode())
	}
}
