//go:build windows

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Titles shorter than this are read without asking for the length first.
const titleBufferLen = 512

const (
	swRestore = 9
	gaRoot    = 2
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procIsWindow             = user32.NewProc("IsWindow")
	procGetAncestor          = user32.NewProc("GetAncestor")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procIsIconic             = user32.NewProc("IsIconic")
	procShowWindow           = user32.NewProc("ShowWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procBringWindowToTop     = user32.NewProc("BringWindowToTop")
)

// Callbacks are a finite resource on Windows, so one is created and the
// per-call collector is passed through lParam.
var (
	enumOnce     sync.Once
	enumCallback uintptr
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// WindowsBackend implements Backend over user32.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

// NewWindowsBackend returns a backend for the current desktop.
func NewWindowsBackend() *WindowsBackend {
	return &WindowsBackend{}
}

// NewNative opens the window-system backend for the running platform.
func NewNative() (Backend, func(), error) {
	if err := user32.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load user32.dll: %w", err)
	}
	return NewWindowsBackend(), func() {}, nil
}

// ListWindows drives EnumWindows to completion and returns the collected
// top-level windows in enumeration order.
func (b *WindowsBackend) ListWindows() ([]Window, error) {
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
			handles := (*[]uintptr)(unsafe.Pointer(lparam))
			*handles = append(*handles, hwnd)
			return 1 // continue enumeration
		})
	})

	var handles []uintptr
	ret, _, err := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&handles)))
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}

	out := make([]Window, 0, len(handles))
	for _, hwnd := range handles {
		out = append(out, Window{
			Handle: Handle(hwnd),
			Title:  windowText(hwnd),
		})
	}
	return out, nil
}

// WindowExists checks IsWindow, that hwnd is its own root ancestor, and
// that the window still reports a rectangle. IsWindow alone accepts child
// controls.
func (b *WindowsBackend) WindowExists(handle Handle) bool {
	hwnd := uintptr(handle)
	if hwnd == 0 {
		return false
	}
	if ret, _, _ := procIsWindow.Call(hwnd); ret == 0 {
		return false
	}
	if root, _, _ := procGetAncestor.Call(hwnd, gaRoot); root != hwnd {
		return false
	}
	var r rect
	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	return ret != 0
}

// ActiveWindow returns the foreground window, if any.
func (b *WindowsBackend) ActiveWindow() (Handle, bool) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, false
	}
	return Handle(hwnd), true
}

// BringToFront restores an iconic window and asks for the foreground.
// Windows may refuse SetForegroundWindow for background processes; the
// taskbar button flashes instead and no error is reported.
func (b *WindowsBackend) BringToFront(handle Handle) error {
	hwnd := uintptr(handle)
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		procShowWindow.Call(hwnd, swRestore)
	}
	procBringWindowToTop.Call(hwnd)
	procSetForegroundWindow.Call(hwnd)
	return nil
}

func windowText(hwnd uintptr) string {
	size := titleBufferLen
	if n, _, _ := procGetWindowTextLengthW.Call(hwnd); int(n)+1 > size {
		size = int(n) + 1
	}
	buf := make([]uint16, size)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}
