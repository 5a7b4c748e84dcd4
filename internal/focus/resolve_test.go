package focus

import (
	"errors"
	"testing"

	"github.com/1broseidon/winfocus/internal/platform"
)

func newTestResolver(b platform.Backend) *Resolver {
	return NewResolver(NewEnumerator(b, nil), nil)
}

func exampleWindows() *platform.Fake {
	return platform.NewFake(
		platform.Window{Handle: 111, Title: "Chrome - Tab"},
		platform.Window{Handle: 222, Title: "chrome"},
		platform.Window{Handle: 333, Title: "Notepad"},
	)
}

func TestResolve(t *testing.T) {
	r := newTestResolver(exampleWindows())

	tests := []struct {
		name     string
		query    string
		want     platform.Handle
		found    bool
		strategy Strategy
	}{
		{"literal live handle", "333", 333, true, StrategyLiteral},
		{"literal with leading zeros", "0111", 111, true, StrategyLiteral},
		{"literal stale handle", "444", 0, false, StrategyNone},
		{"literal zero", "0", 0, false, StrategyNone},
		{"literal overflow", "99999999999999999999999", 0, false, StrategyNone},
		{"embedded handle", "Notepad (333)", 333, true, StrategyEmbedded},
		{"embedded handle ignores title", "Something Else (222)", 222, true, StrategyEmbedded},
		{"embedded trailing whitespace", "Notepad (333)  \t", 333, true, StrategyEmbedded},
		{"embedded stale handle", "Notepad (999)", 0, false, StrategyNone},
		{"pattern is case-sensitive", "chrome", 222, true, StrategyPattern},
		{"pattern first match in enumeration order", "[Cc]hrome", 111, true, StrategyPattern},
		{"pattern regex syntax", "^Note.*d$", 333, true, StrategyPattern},
		{"pattern no match", "Firefox", 0, false, StrategyNone},
		{"invalid pattern", "Chrome (", 0, false, StrategyNone},
		{"empty query", "", 0, false, StrategyNone},
		{"blank query is a pattern", " ", 111, true, StrategyPattern},
		{"blank pattern no match", "   ", 0, false, StrategyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.query)
			if got.Found != tt.found || got.Handle != tt.want || got.Strategy != tt.strategy {
				t.Errorf("Resolve(%q) = %+v, want handle=%d found=%v strategy=%v",
					tt.query, got, tt.want, tt.found, tt.strategy)
			}
			if !tt.found && got != NotFound {
				t.Errorf("Resolve(%q) = %+v, want NotFound sentinel", tt.query, got)
			}
		})
	}
}

func TestResolve_HandleRequiresLiveWindow(t *testing.T) {
	fake := exampleWindows()
	r := newTestResolver(fake)

	if h, ok := r.Resolve("222").Ok(); !ok || h != 222 {
		t.Fatalf("Resolve(222) = %d, %v; want 222, true", h, ok)
	}

	fake.CloseWindow(222)

	if res := r.Resolve("222"); res.Found {
		t.Errorf("Resolve(222) after close = %+v, want NotFound", res)
	}
	if res := r.Resolve("chrome (222)"); res.Found {
		t.Errorf("Resolve(chrome (222)) after close = %+v, want NotFound", res)
	}
}

func TestResolve_EmbeddedTitlesWithParensAndQuotes(t *testing.T) {
	fake := platform.NewFake(
		platform.Window{Handle: 42, Title: "Report (2) - Draft"},
		platform.Window{Handle: 7, Title: "Build (123)"},
		platform.Window{Handle: 9, Title: "it's \"quoted\""},
	)
	r := newTestResolver(fake)

	tests := []struct {
		query string
		want  platform.Handle
	}{
		{"Report (2) - Draft (42)", 42},
		{"Build (123) (7)", 7},
		{"it''s \"quoted\" (9)", 9},
	}
	for _, tt := range tests {
		if h, ok := r.Resolve(tt.query).Ok(); !ok || h != tt.want {
			t.Errorf("Resolve(%q) = %d, %v; want %d", tt.query, h, ok, tt.want)
		}
	}
}

func TestResolve_EmptyWindowSet(t *testing.T) {
	r := newTestResolver(platform.NewFake())

	if res := r.Resolve("123"); res.Found {
		t.Errorf("Resolve(123) = %+v, want NotFound", res)
	}
	if res := r.Resolve(".*"); res.Found {
		t.Errorf("Resolve(.*) = %+v, want NotFound", res)
	}
}

func TestResolve_EnumerationFailureOnlyAffectsPatterns(t *testing.T) {
	fake := exampleWindows()
	fake.ListErr = errors.New("display gone")
	r := newTestResolver(fake)

	if h, ok := r.Resolve("333").Ok(); !ok || h != 333 {
		t.Errorf("Resolve(333) = %d, %v; want 333, true", h, ok)
	}
	if h, ok := r.Resolve("Notepad (333)").Ok(); !ok || h != 333 {
		t.Errorf("Resolve(Notepad (333)) = %d, %v; want 333, true", h, ok)
	}
	if res := r.Resolve("Notepad"); res.Found {
		t.Errorf("Resolve(Notepad) = %+v, want NotFound", res)
	}
}

func TestResolve_SkipsUntitledWindows(t *testing.T) {
	fake := platform.NewFake(
		platform.Window{Handle: 1, Title: ""},
		platform.Window{Handle: 2, Title: "editor"},
	)
	r := newTestResolver(fake)

	if h, ok := r.Resolve("^").Ok(); !ok || h != 2 {
		t.Errorf("Resolve(^) = %d, %v; want 2, true", h, ok)
	}
	// Untitled windows are still live for handle queries.
	if h, ok := r.Resolve("1").Ok(); !ok || h != 1 {
		t.Errorf("Resolve(1) = %d, %v; want 1, true", h, ok)
	}
}
