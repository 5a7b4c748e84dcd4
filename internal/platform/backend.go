package platform

import "errors"

// ErrUnsupported is returned when no window-system backend exists for the
// current platform.
var ErrUnsupported = errors.New("no window backend for this platform")

// Handle is a platform-neutral window identifier. It is opaque to callers
// and stable for the lifetime of the window it names.
type Handle uint64

// Window is a top-level window as reported by the window system.
type Window struct {
	Handle Handle
	Title  string
}

// Backend abstracts the window-system operations the focus engine needs.
//
// Implementations must not cache windows between calls: every ListWindows
// reflects the desktop at call time, and WindowExists is the only
// authority on whether a handle is still live.
type Backend interface {
	// ListWindows returns every top-level window in enumeration order,
	// including ones with empty titles.
	ListWindows() ([]Window, error)

	// WindowExists reports whether handle refers to a live top-level window.
	// Child windows and other non-window resources are not live.
	WindowExists(handle Handle) bool

	// ActiveWindow returns the window that currently has input focus.
	// ok is false when no window is focused or the system cannot tell.
	ActiveWindow() (handle Handle, ok bool)

	// BringToFront restores the window if minimized and requests focus.
	// The window system may refuse; a nil error does not guarantee the
	// window actually became active.
	BringToFront(handle Handle) error
}
