package focus

import (
	"testing"

	"github.com/1broseidon/winfocus/internal/platform"
)

func TestMatcherScoreLadder(t *testing.T) {
	tests := []struct {
		name    string
		partial string
		title   string
		want    int
	}{
		{"exact", "Chrome", "Chrome", ScoreExact},
		{"exact folded", "Chrome", "chrome", ScoreExactFold},
		{"exact folded unicode", "ÉCOLE", "école", ScoreExactFold},
		{"wildcard", "Ch*e", "Chrome", ScoreWildcard},
		{"wildcard single char", "Note?ad", "Notepad", ScoreWildcard},
		{"wildcard class", "[MN]otepad", "Notepad", ScoreWildcard},
		{"wildcard folded", "Ch*e", "chrome", ScoreWildcardFold},
		{"prefix", "Note", "Notepad", ScorePrefix},
		{"prefix folded", "Note", "notepad", ScorePrefixFold},
		{"substring", "Note", "My Notes", ScoreSubstring},
		{"substring folded", "Note", "my notes", ScoreSubstringFold},
		{"no match", "Note", "Calculator", ScoreNone},
		{"empty title", "Note", "", ScoreNone},
		{"invalid wildcard falls through", "[Note", "[Notes]", ScorePrefix},
		{"backslash is literal", `C:\temp`, "C:temp", ScoreNone},
		{"backslash matches itself", `C:\te*`, `C:\temp`, ScoreWildcard},
		{"braces are literal", "{Chrome,Notepad}", "Notepad", ScoreNone},
		{"braces match themselves", "{a}*", "{a} notes", ScoreWildcard},
		{"class stays active with braces", "[MN]ote{pad}", "Note{pad}", ScoreWildcard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newMatcher(tt.partial).score(tt.title)
			if got != tt.want {
				t.Errorf("score(%q, %q) = %d, want %d", tt.partial, tt.title, got, tt.want)
			}
		})
	}
}

func TestRank_Example(t *testing.T) {
	windows := []WindowRecord{
		{Title: "Chrome - Tab", Handle: 111},
		{Title: "chrome", Handle: 222},
		{Title: "Notepad", Handle: 333},
	}

	got := Rank("chrome", windows)
	if len(got) != 2 {
		t.Fatalf("Rank returned %d candidates, want 2: %+v", len(got), got)
	}
	if got[0].Handle != 222 || got[0].Score != ScoreExact {
		t.Errorf("first = %+v, want handle 222 score %d", got[0], ScoreExact)
	}
	// "Chrome - Tab" starts with "chrome" once case is folded.
	if got[1].Handle != 111 || got[1].Score != ScorePrefixFold {
		t.Errorf("second = %+v, want handle 111 score %d", got[1], ScorePrefixFold)
	}
}

func TestRank_OrdersByScoreThenTitle(t *testing.T) {
	windows := []WindowRecord{
		{Title: "term b", Handle: 1},
		{Title: "my term", Handle: 2},
		{Title: "term a", Handle: 3},
		{Title: "term", Handle: 4},
		{Title: "term a", Handle: 0x10},
	}

	got := Rank("term", windows)
	wantHandles := []platform.Handle{4, 3, 0x10, 1, 2}
	if len(got) != len(wantHandles) {
		t.Fatalf("Rank returned %d candidates, want %d", len(got), len(wantHandles))
	}
	for i, want := range wantHandles {
		if got[i].Handle != want {
			t.Errorf("got[%d] = %+v, want handle %d", i, got[i], want)
		}
	}
}

func TestRank_ExactOutranksSubstring(t *testing.T) {
	windows := []WindowRecord{
		{Title: "aaa vim bbb", Handle: 1},
		{Title: "vim", Handle: 2},
	}
	got := Rank("vim", windows)
	if len(got) != 2 || got[0].Handle != 2 {
		t.Fatalf("Rank(vim) = %+v, want exact match first", got)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("exact score %d should exceed substring score %d", got[0].Score, got[1].Score)
	}
}

func TestRank_BlankPartialAgreesWithResolve(t *testing.T) {
	windows := []WindowRecord{
		{Title: "Notepad", Handle: 1},
		{Title: "My Notes", Handle: 2},
	}
	got := Rank(" ", windows)
	if len(got) != 1 || got[0].Handle != 2 || got[0].Score != ScoreSubstring {
		t.Fatalf("Rank(\" \") = %+v, want only handle 2 at %d", got, ScoreSubstring)
	}

	fake := platform.NewFake(
		platform.Window{Handle: 1, Title: "Notepad"},
		platform.Window{Handle: 2, Title: "My Notes"},
	)
	if h, ok := newTestResolver(fake).Resolve(" ").Ok(); !ok || h != 2 {
		t.Fatalf("Resolve(\" \") = %d, %v; want 2, true", h, ok)
	}
}

func TestRank_EmptyInputs(t *testing.T) {
	if got := Rank("anything", nil); got == nil || len(got) != 0 {
		t.Errorf("Rank over no windows = %#v, want empty non-nil slice", got)
	}
	windows := []WindowRecord{{Title: "Notepad", Handle: 1}}
	if got := Rank("", windows); len(got) != 0 {
		t.Errorf("Rank with empty partial = %+v, want empty", got)
	}
}

func TestCandidateDisplay(t *testing.T) {
	tests := []struct {
		c    Candidate
		want string
	}{
		{Candidate{Title: "Notepad", Handle: 333}, "Notepad (333)"},
		{Candidate{Title: "Bob's file", Handle: 7}, "Bob''s file (7)"},
		{Candidate{Title: "Build (123)", Handle: 8}, "Build (123) (8)"},
	}
	for _, tt := range tests {
		if got := tt.c.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}

func TestRank_DisplayRoundTrip(t *testing.T) {
	fake := platform.NewFake(
		platform.Window{Handle: 1, Title: "Bob's \"notes\" (draft)"},
		platform.Window{Handle: 22, Title: "Build (123)"},
		platform.Window{Handle: 333, Title: "[a-z]+ regex*"},
		platform.Window{Handle: 4444, Title: "two\nlines"},
		platform.Window{Handle: 55555, Title: "  padded (9)  "},
	)
	enum := NewEnumerator(fake, nil)
	r := NewResolver(enum, nil)
	windows := enum.ListWindows()

	for _, w := range windows {
		var found *Candidate
		for _, c := range Rank(w.Title, windows) {
			if c.Handle == w.Handle {
				c := c
				found = &c
				break
			}
		}
		if found == nil {
			t.Errorf("Rank(%q) did not include handle %d", w.Title, w.Handle)
			continue
		}
		if h, ok := r.Resolve(found.Display()).Ok(); !ok || h != w.Handle {
			t.Errorf("Resolve(%q) = %d, %v; want %d", found.Display(), h, ok, w.Handle)
		}
	}
}
