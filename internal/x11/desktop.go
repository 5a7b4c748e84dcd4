package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// stickyDesktop is the _NET_WM_DESKTOP value for windows shown on all desktops.
const stickyDesktop = 0xFFFFFFFF

// GetCurrentDesktop returns the current virtual desktop number (0-indexed).
// Uses _NET_CURRENT_DESKTOP atom. Returns 0 with an error if detection fails.
func (c *Connection) GetCurrentDesktop() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get current desktop: %w", err)
	}
	return int(desktop), nil
}

// GetWindowDesktop returns the desktop number a window is on.
// Returns -1 for "sticky" windows (visible on all desktops).
func (c *Connection) GetWindowDesktop(windowID xproto.Window) (int, error) {
	desktop, err := ewmh.WmDesktopGet(c.XUtil, windowID)
	if err != nil {
		return 0, fmt.Errorf("failed to get window desktop: %w", err)
	}
	if desktop == stickyDesktop {
		return -1, nil
	}
	return int(desktop), nil
}

// SwitchDesktop asks the window manager to show the given virtual desktop.
func (c *Connection) SwitchDesktop(desktop int) error {
	return c.sendRootMessage("_NET_CURRENT_DESKTOP", 0, uint32(desktop), uint32(xproto.TimeCurrentTime))
}

// ShowWindowDesktop switches to the desktop holding windowID when it is not
// the current one. Window managers that already do this on activation
// simply see a no-op request.
func (c *Connection) ShowWindowDesktop(windowID xproto.Window) error {
	target, err := c.GetWindowDesktop(windowID)
	if err != nil || target < 0 {
		return nil
	}
	current, err := c.GetCurrentDesktop()
	if err != nil || current == target {
		return nil
	}
	return c.SwitchDesktop(target)
}
