package platform

import "sync"

// Fake is an in-memory window registry implementing Backend. Windows are
// reported in insertion order. It is used by tests and by hosts that want to
// exercise the engine without a display.
type Fake struct {
	mu      sync.Mutex
	windows []Window
	fronted []Handle
	active  Handle

	// ListErr, when set, is returned by ListWindows.
	ListErr error
}

var _ Backend = (*Fake)(nil)

// NewFake creates a registry holding the given windows.
func NewFake(windows ...Window) *Fake {
	f := &Fake{}
	f.windows = append(f.windows, windows...)
	return f
}

// Open adds a window to the registry.
func (f *Fake) Open(handle Handle, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = append(f.windows, Window{Handle: handle, Title: title})
}

// CloseWindow removes a window from the registry.
func (f *Fake) CloseWindow(handle Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.windows {
		if w.Handle == handle {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return
		}
	}
}

// Fronted returns the handles passed to BringToFront, oldest first.
func (f *Fake) Fronted() []Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Handle, len(f.fronted))
	copy(out, f.fronted)
	return out
}

func (f *Fake) ListWindows() ([]Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]Window, len(f.windows))
	copy(out, f.windows)
	return out, nil
}

func (f *Fake) WindowExists(handle Handle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.windows {
		if w.Handle == handle {
			return true
		}
	}
	return false
}

// SetActive marks handle as the focused window.
func (f *Fake) SetActive(handle Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = handle
}

func (f *Fake) ActiveWindow() (Handle, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.windows {
		if f.active != 0 && w.Handle == f.active {
			return f.active, true
		}
	}
	return 0, false
}

func (f *Fake) BringToFront(handle Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fronted = append(f.fronted, handle)
	f.active = handle
	return nil
}
