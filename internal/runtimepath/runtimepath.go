package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// runUserRoot holds per-uid runtime directories on systemd hosts.
var runUserRoot = "/run/user"

// Dir returns the per-user directory the activity log lives under. It is
// the first existing location among XDG_RUNTIME_DIR, <runUserRoot>/<uid> and
// the Windows local app data directory; otherwise an owner-only directory
// under os.TempDir is created.
func Dir() (string, error) {
	for _, lookup := range []func() (string, bool){
		xdgRuntimeDir,
		runUserDir,
		localAppData,
	} {
		if dir, ok := lookup(); ok {
			return dir, nil
		}
	}

	dir := filepath.Join(os.TempDir(), "winfocus-runtime-"+userKey())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return dir, nil
}

// ActivityLogPath returns the default activity log path.
func ActivityLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "winfocus", "activity.log"), nil
}

func xdgRuntimeDir() (string, bool) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	return dir, dir != ""
}

func runUserDir() (string, bool) {
	uid := os.Getuid()
	if uid < 0 {
		return "", false
	}
	dir := filepath.Join(runUserRoot, strconv.Itoa(uid))
	info, err := os.Stat(dir)
	return dir, err == nil && info.IsDir()
}

func localAppData() (string, bool) {
	if runtime.GOOS != "windows" {
		return "", false
	}
	dir, err := os.UserCacheDir()
	return dir, err == nil
}

// userKey names the temp fallback. Windows has no uid.
func userKey() string {
	if uid := os.Getuid(); uid >= 0 {
		return strconv.Itoa(uid)
	}
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return "default"
}
