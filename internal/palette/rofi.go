package palette

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os/exec"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user closes the palette without selecting an item.
var ErrCancelled = errors.New("palette cancelled")

// Exit codes for rofi kb-custom keybindings
const (
	ExitNormal    = 0  // Normal selection
	ExitCancelled = 1  // User cancelled (Escape)
	ExitCustom1   = 10 // kb-custom-1 (Alt+Return by default)
)

type backendKind int

const (
	kindRofi backendKind = iota
	kindFuzzel
	kindWofi
	kindDmenu
)

// dmenuLikeBackend drives any launcher that reads rows on stdin and prints
// the selection on stdout.
type dmenuLikeBackend struct {
	command string
	kind    backendKind
	caps    Capabilities

	fuzzyMatching bool
}

func NewRofiBackend() Backend {
	return &dmenuLikeBackend{
		command: "rofi",
		kind:    kindRofi,
		caps: Capabilities{
			Markup:      true,
			CustomKeys:  true,
			IndexOutput: true,
			MessageBar:  true,
			RowStates:   true,
		},
	}
}

func NewDmenuBackend() Backend {
	return &dmenuLikeBackend{
		command: "dmenu",
		kind:    kindDmenu,
	}
}

func NewWofiBackend() Backend {
	return &dmenuLikeBackend{
		command: "wofi",
		kind:    kindWofi,
		caps: Capabilities{
			Markup: true,
		},
	}
}

func NewFuzzelBackend() Backend {
	return &dmenuLikeBackend{
		command: "fuzzel",
		kind:    kindFuzzel,
		caps: Capabilities{
			IndexOutput: true,
		},
	}
}

func (b *dmenuLikeBackend) Capabilities() Capabilities {
	return b.caps
}

// SetFuzzyMatching enables rofi's fuzzy matching mode when supported.
func (b *dmenuLikeBackend) SetFuzzyMatching(enabled bool) {
	b.fuzzyMatching = enabled
}

func (b *dmenuLikeBackend) Show(prompt string, items []Item, message string) (SelectResult, error) {
	if len(items) == 0 {
		return SelectResult{}, fmt.Errorf("palette: no items to show")
	}

	input, active := b.formatInput(items)
	args := b.buildArgs(prompt, message, active)

	cmd := exec.Command(b.command, args...)
	cmd.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	selection := strings.TrimSpace(string(out))

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		if selection == "" && isCancelExit(err) {
			return SelectResult{}, ErrCancelled
		}

		// Custom keybinding exits are not errors
		if exitCode != ExitCustom1 {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return SelectResult{}, fmt.Errorf("%s failed: %s", b.command, msg)
			}
			return SelectResult{}, fmt.Errorf("%s failed: %w", b.command, err)
		}
	}

	if selection == "" {
		return SelectResult{}, ErrCancelled
	}

	idx, err := b.parseSelection(selection, items)
	if err != nil {
		return SelectResult{}, err
	}

	return SelectResult{
		Item:     items[idx],
		Index:    idx,
		ExitCode: exitCode,
	}, nil
}

func (b *dmenuLikeBackend) buildArgs(prompt string, message string, active []int) []string {
	var args []string

	switch b.kind {
	case kindRofi:
		args = []string{"-dmenu", "-i"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
		// Output only the index; window titles may contain anything.
		args = append(args, "-format", "i")
		args = append(args, "-no-custom")
		if b.fuzzyMatching {
			args = append(args, "-matching", "fuzzy")
		}
		if b.caps.Markup {
			args = append(args, "-markup-rows")
		}
		if len(active) > 0 {
			args = append(args, "-a", formatIndices(active))
			args = append(args, "-selected-row", strconv.Itoa(active[0]))
		}
		args = append(args, "-kb-custom-1", "Alt+Return")
		if message != "" {
			// -mesg is always rendered as pango markup.
			args = append(args, "-mesg", html.EscapeString(message))
		}

	case kindFuzzel:
		args = []string{"--dmenu"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}
		args = append(args, "--index")

	case kindWofi:
		args = []string{"--dmenu"}
		if prompt != "" {
			args = append(args, "--prompt", prompt)
		}
		args = append(args, "--allow-markup")

	case kindDmenu:
		args = []string{"-i"}
		if prompt != "" {
			args = append(args, "-p", prompt)
		}
	}

	return args
}

// formatInput renders one row per item and collects active row indices.
// Labels are expected to be unique; text-matching backends select by label.
func (b *dmenuLikeBackend) formatInput(items []Item) (string, []int) {
	lines := make([]string, 0, len(items))
	var active []int

	for i, item := range items {
		lines = append(lines, b.formatItem(item))
		if item.IsActive && b.caps.RowStates {
			active = append(active, i)
		}
	}

	return strings.Join(lines, "\n"), active
}

func (b *dmenuLikeBackend) formatItem(item Item) string {
	display := sanitizeLabel(item.Label)
	if b.caps.Markup {
		// -markup-rows is enabled: escape all user-controlled content.
		display = html.EscapeString(display)
	}

	// Rofi dmenu supports entry properties via the \0key\x1fvalue protocol.
	// Important: there is a *single* NUL separator followed by key/value pairs delimited by \x1f.
	if b.kind != kindRofi {
		return display
	}

	var attrs []string
	if item.Info != "" {
		attrs = append(attrs, "info", sanitizeRofiField(item.Info))
	}
	if item.Meta != "" {
		attrs = append(attrs, "meta", sanitizeRofiField(item.Meta))
	}
	if item.IsActive {
		attrs = append(attrs, "active", "true")
	}

	if len(attrs) == 0 {
		return display
	}
	return display + "\x00" + strings.Join(attrs, "\x1f")
}

// parseSelection maps launcher output back to an item index.
func (b *dmenuLikeBackend) parseSelection(selection string, items []Item) (int, error) {
	if b.caps.IndexOutput {
		idx, err := strconv.Atoi(selection)
		if err != nil {
			return b.findByLabel(selection, items)
		}
		if idx < 0 || idx >= len(items) {
			return 0, fmt.Errorf("palette: index %d out of range", idx)
		}
		return idx, nil
	}
	return b.findByLabel(selection, items)
}

func (b *dmenuLikeBackend) findByLabel(selection string, items []Item) (int, error) {
	for i, item := range items {
		label := sanitizeLabel(item.Label)
		if label == selection || (b.caps.Markup && html.EscapeString(label) == selection) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("palette: unknown selection %q", selection)
}

func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")
	return strings.TrimSpace(label)
}

func sanitizeRofiField(value string) string {
	// Avoid breaking the \0key\x1fvalue protocol with control separators.
	value = strings.ReplaceAll(value, "\x00", " ")
	value = strings.ReplaceAll(value, "\x1f", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func formatIndices(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, ",")
}

func isCancelExit(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	// Rofi/dmenu/wofi typically use 1 for "no selection" and 130 for Ctrl+C.
	switch exitErr.ExitCode() {
	case 1, 130:
		return true
	default:
		return false
	}
}
