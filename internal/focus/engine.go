package focus

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/1broseidon/winfocus/internal/logging"
	"github.com/1broseidon/winfocus/internal/platform"
)

// Options tunes an Engine.
type Options struct {
	// MaxResults caps Complete; 0 means unlimited.
	MaxResults int
	Logger     *logging.Logger
}

// Engine binds enumeration, resolution and ranking for host programs.
type Engine struct {
	enum       *Enumerator
	resolver   *Resolver
	log        *logging.Logger
	maxResults int
}

// NewEngine creates an engine over backend.
func NewEngine(backend platform.Backend, opts Options) *Engine {
	enum := NewEnumerator(backend, opts.Logger)
	return &Engine{
		enum:       enum,
		resolver:   NewResolver(enum, opts.Logger),
		log:        opts.Logger,
		maxResults: opts.MaxResults,
	}
}

// Windows returns the titled top-level windows in enumeration order.
func (e *Engine) Windows() []WindowRecord {
	return e.enum.ListWindows()
}

// Resolve resolves query to a live window.
func (e *Engine) Resolve(query string) Result {
	res := e.resolver.Resolve(query)
	if res.Found {
		e.log.Log(logging.ActionResolve, map[string]interface{}{
			"query":    query,
			"strategy": res.Strategy.String(),
			"handle":   uint64(res.Handle),
		})
	} else {
		e.log.Log(logging.ActionMiss, map[string]interface{}{"query": query})
	}
	return res
}

// Complete ranks the current windows against partial.
func (e *Engine) Complete(partial string) []Candidate {
	candidates := Rank(partial, e.enum.ListWindows())
	if e.maxResults > 0 && len(candidates) > e.maxResults {
		candidates = candidates[:e.maxResults]
	}
	e.log.Log(logging.ActionComplete, map[string]interface{}{
		"partial": partial,
		"results": len(candidates),
	})
	return candidates
}

// ActiveWindow returns the window that currently has focus.
func (e *Engine) ActiveWindow() (platform.Handle, bool) {
	return e.enum.ActiveWindow()
}

// BringToFront activates handle after confirming it is still live.
// Returns ErrNotFound for stale handles.
func (e *Engine) BringToFront(handle platform.Handle) error {
	if !e.enum.WindowExists(handle) {
		return fmt.Errorf("window %d: %w", handle, ErrNotFound)
	}
	if err := e.enum.BringToFront(handle); err != nil {
		return fmt.Errorf("failed to bring window %d to front: %w", handle, err)
	}
	e.log.Log(logging.ActionFocus, map[string]interface{}{"handle": uint64(handle)})
	return nil
}

// FocusWindow resolves query and brings the window to the front. The
// returned result reflects resolution only; activation is best-effort and
// failures are logged.
func (e *Engine) FocusWindow(query string) Result {
	res := e.Resolve(query)
	if !res.Found {
		return NotFound
	}
	if err := e.BringToFront(res.Handle); err != nil {
		e.log.Warnf("Focus: %v", err)
	}
	return res
}

// Suggest returns up to n windows whose titles fuzzily resemble query,
// best first. Hosts use it to offer alternatives after a NotFound.
func (e *Engine) Suggest(query string, n int) []WindowRecord {
	if n <= 0 || query == "" {
		return nil
	}
	windows := e.enum.ListWindows()
	matches := fuzzy.FindFrom(query, titleSource(windows))

	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]WindowRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, windows[m.Index])
	}
	return out
}

type titleSource []WindowRecord

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }
