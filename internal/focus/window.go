// Package focus resolves user queries to live windows and ranks windows
// for interactive completion.
//
// Nothing in this package caches window state: every call enumerates the
// desktop again through a platform.Backend.
package focus

import (
	"errors"

	"github.com/1broseidon/winfocus/internal/logging"
	"github.com/1broseidon/winfocus/internal/platform"
)

// ErrNotFound reports that a query or handle does not name a live window.
var ErrNotFound = errors.New("no matching window")

// WindowRecord is a snapshot of one titled top-level window.
type WindowRecord struct {
	Title  string          `json:"title"`
	Handle platform.Handle `json:"handle"`
}

// Enumerator lists live windows through a platform backend.
type Enumerator struct {
	backend platform.Backend
	log     *logging.Logger
}

// NewEnumerator wraps backend. A nil logger discards diagnostics.
func NewEnumerator(backend platform.Backend, log *logging.Logger) *Enumerator {
	return &Enumerator{backend: backend, log: log}
}

// ListWindows returns every top-level window that has a title, in
// enumeration order. Backend failures yield an empty list.
func (e *Enumerator) ListWindows() []WindowRecord {
	windows, err := e.backend.ListWindows()
	if err != nil {
		e.log.Warnf("Enumerate: failed to list windows: %v", err)
		return []WindowRecord{}
	}

	records := make([]WindowRecord, 0, len(windows))
	for _, w := range windows {
		if w.Title == "" {
			continue
		}
		records = append(records, WindowRecord{Title: w.Title, Handle: w.Handle})
	}
	return records
}

// WindowExists reports whether handle still refers to a live window.
func (e *Enumerator) WindowExists(handle platform.Handle) bool {
	return e.backend.WindowExists(handle)
}

// ActiveWindow returns the focused window, if the backend can tell.
func (e *Enumerator) ActiveWindow() (platform.Handle, bool) {
	return e.backend.ActiveWindow()
}

// BringToFront restores and activates the window. Best-effort.
func (e *Enumerator) BringToFront(handle platform.Handle) error {
	return e.backend.BringToFront(handle)
}
