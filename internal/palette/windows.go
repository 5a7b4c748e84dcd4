package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/winfocus/internal/focus"
	"github.com/1broseidon/winfocus/internal/platform"
)

// Pick is a window chosen from the palette.
type Pick struct {
	// Display is the "title (handle)" form; it resolves back to Handle.
	Display string
	Handle  platform.Handle
	// Alternate is set when the selection used the secondary key binding.
	Alternate bool
}

// PickOptions controls how windows are presented.
type PickOptions struct {
	Prompt string
	// Message is shown above the rows by launchers with a message bar.
	Message string
	// Active highlights the focused window; zero highlights nothing.
	Active platform.Handle
}

// WindowItems renders windows as palette rows in the suggestion format.
// The lowercased title goes into Meta so rofi can search it even when the
// label is markup-escaped.
func WindowItems(windows []focus.WindowRecord, active platform.Handle) []Item {
	items := make([]Item, 0, len(windows))
	for _, w := range windows {
		items = append(items, Item{
			Label:    focus.FormatDisplay(w.Title, w.Handle),
			Info:     strconv.FormatUint(uint64(w.Handle), 10),
			Meta:     strings.ToLower(w.Title),
			IsActive: active != 0 && w.Handle == active,
		})
	}
	return items
}

// PickWindow shows windows in the palette and returns the selection.
// Returns ErrCancelled if the user closed the palette.
func PickWindow(b Backend, windows []focus.WindowRecord, opts PickOptions) (Pick, error) {
	if len(windows) == 0 {
		return Pick{}, fmt.Errorf("palette: no windows to pick from")
	}

	message := opts.Message
	if !b.Capabilities().MessageBar {
		message = ""
	}

	items := WindowItems(windows, opts.Active)
	res, err := b.Show(opts.Prompt, items, message)
	if err != nil {
		return Pick{}, err
	}
	if res.Index < 0 || res.Index >= len(windows) {
		return Pick{}, fmt.Errorf("palette: index %d out of range", res.Index)
	}

	return Pick{
		Display:   res.Item.Label,
		Handle:    windows[res.Index].Handle,
		Alternate: res.ExitCode == ExitCustom1,
	}, nil
}

// PickMessage summarizes the rows for the message bar.
func PickMessage(count int, initial string) string {
	noun := "windows"
	if count == 1 {
		noun = "window"
	}
	if initial == "" {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %s matching %q", count, noun, initial)
}
