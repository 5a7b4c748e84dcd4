package focus

import (
	"regexp"
	"strconv"

	"github.com/1broseidon/winfocus/internal/logging"
	"github.com/1broseidon/winfocus/internal/platform"
)

// Strategy identifies how a query was resolved.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyLiteral
	StrategyEmbedded
	StrategyPattern
)

func (s Strategy) String() string {
	switch s {
	case StrategyLiteral:
		return "literal"
	case StrategyEmbedded:
		return "embedded"
	case StrategyPattern:
		return "pattern"
	default:
		return "none"
	}
}

// Result is the outcome of resolving a query. Found is false exactly when
// the result equals NotFound.
type Result struct {
	Handle   platform.Handle `json:"handle"`
	Found    bool            `json:"found"`
	Strategy Strategy        `json:"-"`
}

// NotFound is the result for queries that name no live window.
var NotFound = Result{}

// Ok returns the handle and whether one was found.
func (r Result) Ok() (platform.Handle, bool) {
	return r.Handle, r.Found
}

var (
	literalHandle = regexp.MustCompile(`^[0-9]+$`)
	// Greedy prefix: the last "(digits)" wins, so titles that carry their
	// own parenthesized numbers still round-trip.
	embeddedHandle = regexp.MustCompile(`(?s)^.* \(([0-9]+)\)\s*$`)
)

// Resolver turns a query string into a live window handle.
type Resolver struct {
	enum *Enumerator
	log  *logging.Logger
}

// NewResolver creates a resolver over enum.
func NewResolver(enum *Enumerator, log *logging.Logger) *Resolver {
	return &Resolver{enum: enum, log: log}
}

// Resolve applies, in order: a literal decimal handle, a "title (handle)"
// suffix, and a case-sensitive regular expression matched against window
// titles in enumeration order. Handles from the first two forms are
// checked for liveness. Any string is accepted; invalid patterns and
// empty queries resolve to NotFound.
func (r *Resolver) Resolve(query string) Result {
	if query == "" {
		return NotFound
	}

	if literalHandle.MatchString(query) {
		return r.checked(query, StrategyLiteral)
	}

	if m := embeddedHandle.FindStringSubmatch(query); m != nil {
		return r.checked(m[1], StrategyEmbedded)
	}

	return r.matchPattern(query)
}

func (r *Resolver) checked(digits string, strategy Strategy) Result {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		r.log.Debugf("Resolve: handle %q out of range: %v", digits, err)
		return NotFound
	}
	handle := platform.Handle(n)
	if !r.enum.WindowExists(handle) {
		r.log.Debugf("Resolve: handle %d is not a live window", handle)
		return NotFound
	}
	return Result{Handle: handle, Found: true, Strategy: strategy}
}

func (r *Resolver) matchPattern(query string) Result {
	re, err := regexp.Compile(query)
	if err != nil {
		r.log.Debugf("Resolve: invalid pattern %q: %v", query, err)
		return NotFound
	}

	for _, w := range r.enum.ListWindows() {
		if re.MatchString(w.Title) {
			return Result{Handle: w.Handle, Found: true, Strategy: StrategyPattern}
		}
	}
	return NotFound
}
