//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/winfocus/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// NewNative opens the window-system backend for the running platform.
func NewNative() (Backend, func(), error) {
	b, err := NewLinuxBackendFromDisplay()
	if err != nil {
		return nil, nil, err
	}
	return b, b.Disconnect, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// ListWindows returns top-level windows with their titles in client-list order.
func (b *LinuxBackend) ListWindows() ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	ids, err := conn.TopLevelWindows()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(ids))
	for _, id := range ids {
		windows = append(windows, Window{
			Handle: Handle(id),
			Title:  conn.WindowTitle(id),
		})
	}
	return windows, nil
}

// WindowExists reports whether the X window behind handle is still alive.
func (b *LinuxBackend) WindowExists(handle Handle) bool {
	conn, err := b.connection()
	if err != nil {
		return false
	}
	id, ok := xWindow(handle)
	if !ok {
		return false
	}
	return conn.WindowExists(id)
}

// ActiveWindow reads _NET_ACTIVE_WINDOW from the root window.
func (b *LinuxBackend) ActiveWindow() (Handle, bool) {
	conn, err := b.connection()
	if err != nil {
		return 0, false
	}
	id, err := conn.ActiveWindow()
	if err != nil || id == 0 {
		return 0, false
	}
	return Handle(id), true
}

// BringToFront restores a minimized window, switches to its desktop and
// activates it through the window manager.
func (b *LinuxBackend) BringToFront(handle Handle) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	id, ok := xWindow(handle)
	if !ok {
		return fmt.Errorf("handle %d is not an X11 window id", handle)
	}

	if conn.IsMinimized(id) {
		if err := conn.RestoreWindow(id); err != nil {
			return fmt.Errorf("failed to restore window %d: %w", handle, err)
		}
	}
	if err := conn.ShowWindowDesktop(id); err != nil {
		return fmt.Errorf("failed to switch desktop for window %d: %w", handle, err)
	}
	if err := conn.ActivateWindow(id); err != nil {
		return fmt.Errorf("failed to activate window %d: %w", handle, err)
	}
	return nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

// xWindow narrows a handle to the 32-bit X resource id space.
func xWindow(handle Handle) (xproto.Window, bool) {
	if handle == 0 || handle > Handle(^uint32(0)) {
		return 0, false
	}
	return xproto.Window(handle), true
}
