package palette

import (
	"fmt"
	"strings"
)

// Item is a single selectable entry in a palette menu.
type Item struct {
	Label    string // Display text, also returned by text-matching backends
	Info     string // Hidden data returned on selection (rofi info field)
	Meta     string // Hidden search keywords (rofi meta field)
	IsActive bool   // Highlighted as current/active (rofi active row)
}

// SelectResult contains the result of a palette selection.
type SelectResult struct {
	Item     Item
	Index    int
	ExitCode int // 0=normal, 10=kb-custom-1 (Alt+Return)
}

// Capabilities describes what features a backend supports.
type Capabilities struct {
	Markup      bool // Supports pango markup in labels
	CustomKeys  bool // Supports kb-custom-N keybindings
	IndexOutput bool // Can output selection index (not just text)
	MessageBar  bool // Supports message/prompt bar
	RowStates   bool // Supports active/urgent row highlighting
}

// Backend shows a palette to the user and returns the selected item.
type Backend interface {
	// Show displays the palette and returns the selected item.
	// message is optional context shown in the rofi message bar.
	Show(prompt string, items []Item, message string) (SelectResult, error)

	// Capabilities returns the features supported by this backend.
	Capabilities() Capabilities
}

// AutoDetect selects the first available backend in priority order.
func AutoDetect() (Backend, error) {
	name, err := DetectBackend()
	if err != nil {
		return nil, err
	}
	return NewBackend(name)
}

// NewBackend creates a backend by name.
//
// Supported names: auto, rofi, fuzzel, wofi, dmenu.
func NewBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var ctor func() Backend
	switch name {
	case "", "auto":
		return AutoDetect()
	case "rofi":
		ctor = NewRofiBackend
	case "fuzzel":
		ctor = NewFuzzelBackend
	case "wofi":
		ctor = NewWofiBackend
	case "dmenu":
		ctor = NewDmenuBackend
	default:
		return nil, fmt.Errorf("unknown palette backend: %q (expected: auto, %s)", name, strings.Join(launchers, ", "))
	}

	if _, err := lookPath(name); err != nil {
		return nil, fmt.Errorf("palette backend %q not found in PATH", name)
	}
	return ctor(), nil
}
