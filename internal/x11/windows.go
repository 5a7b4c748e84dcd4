package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// EWMH _NET_WM_STATE actions and source indication.
const (
	wmStateRemove    = 0
	sourceIndication = 2 // pager/direct action
)

// TopLevelWindows returns the top-level windows of the display in stacking
// order. The EWMH client list is preferred because it only contains
// managed application windows; servers without an EWMH window manager fall
// back to the root window's children.
func (c *Connection) TopLevelWindows() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err == nil {
		return clients, nil
	}

	tree, treeErr := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if treeErr != nil {
		return nil, fmt.Errorf("failed to get client list: %w (query tree: %v)", err, treeErr)
	}
	return tree.Children, nil
}

// WindowTitle returns the window's title, preferring the UTF-8 _NET_WM_NAME
// and falling back to the legacy WM_NAME. Empty when neither is set.
func (c *Connection) WindowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}

// WindowExists reports whether windowID is a live top-level window. Pixmaps
// fail GetWindowAttributes with BadWindow; child and InputOnly windows are
// rejected by topLevelWindow.
func (c *Connection) WindowExists(windowID xproto.Window) bool {
	if windowID == 0 {
		return false
	}
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false
	}
	tops, err := c.TopLevelWindows()
	if err != nil {
		return false
	}
	return topLevelWindow(windowID, attrs.Class, tops)
}

func topLevelWindow(windowID xproto.Window, class uint16, tops []xproto.Window) bool {
	if windowID == 0 || class != xproto.WindowClassInputOutput {
		return false
	}
	for _, top := range tops {
		if top == windowID {
			return true
		}
	}
	return false
}

// IsMinimized reports whether the window is iconified, either through the
// EWMH hidden state or the ICCCM WM_STATE property.
func (c *Connection) IsMinimized(windowID xproto.Window) bool {
	if states, err := ewmh.WmStateGet(c.XUtil, windowID); err == nil {
		for _, state := range states {
			if state == "_NET_WM_STATE_HIDDEN" {
				return true
			}
		}
	}

	if state, err := icccm.WmStateGet(c.XUtil, windowID); err == nil && state != nil {
		return state.State == icccm.StateIconic
	}
	return false
}

// RestoreWindow de-iconifies a minimized window. Mapping an iconic window
// is the ICCCM way to return it to the normal state; the hidden state is
// cleared as well for window managers that track it separately.
func (c *Connection) RestoreWindow(windowID xproto.Window) error {
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check(); err != nil {
		return fmt.Errorf("failed to map window: %w", err)
	}

	hidden, err := c.internAtom("_NET_WM_STATE_HIDDEN")
	if err != nil {
		return err
	}
	return c.sendRootMessage("_NET_WM_STATE", windowID, wmStateRemove, uint32(hidden), 0, sourceIndication)
}

// ActiveWindow returns the window named by the root's _NET_ACTIVE_WINDOW.
// Zero means no window has focus.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	id, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	return id, nil
}

// ActivateWindow activates and raises a window using _NET_ACTIVE_WINDOW.
func (c *Connection) ActivateWindow(windowID xproto.Window) error {
	return c.sendRootMessage("_NET_ACTIVE_WINDOW", windowID, sourceIndication)
}
