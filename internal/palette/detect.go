package palette

import (
	"fmt"
	"os/exec"
	"strings"
)

// launchers lists supported palette commands in detection priority order.
var launchers = []string{"rofi", "fuzzel", "wofi", "dmenu"}

// lookPath is exec.LookPath, replaceable in tests.
var lookPath = exec.LookPath

// DetectBackend returns the first launcher found in PATH.
func DetectBackend() (string, error) {
	for _, name := range launchers {
		if _, err := lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no palette backend found in PATH (looked for: %s)", strings.Join(launchers, ", "))
}
