package focus

import (
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

// Scores for each rung of the completion ladder, highest first.
const (
	ScoreExact         = 950
	ScoreExactFold     = 900
	ScoreWildcard      = 850
	ScoreWildcardFold  = 800
	ScorePrefix        = 750
	ScorePrefixFold    = 700
	ScoreSubstring     = 650
	ScoreSubstringFold = 600
	ScoreNone          = 0
)

// folder applies Unicode case folding; the fold Caser is stateless.
var folder = cases.Fold()

// matcher scores titles against one partial input.
type matcher struct {
	partial string
	folded  string

	wildcard     glob.Glob // nil when the partial is not a valid wildcard
	wildcardFold glob.Glob
}

func newMatcher(partial string) *matcher {
	m := &matcher{partial: partial, folded: folder.String(partial)}
	m.wildcard = compileWildcard(partial)
	m.wildcardFold = compileWildcard(m.folded)
	return m
}

// literalGlob escapes glob syntax beyond '*', '?' and '[class]', so
// backslashes and braces in titles are matched literally.
var literalGlob = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// compileWildcard compiles a */?/[class] pattern with no separators, so
// '*' spans any run of characters. Malformed patterns match nothing.
func compileWildcard(pattern string) glob.Glob {
	g, err := glob.Compile(literalGlob.Replace(pattern))
	if err != nil {
		return nil
	}
	return g
}

// score returns the first satisfied rung for title.
func (m *matcher) score(title string) int {
	if title == "" || m.partial == "" {
		return ScoreNone
	}
	folded := folder.String(title)

	switch {
	case title == m.partial:
		return ScoreExact
	case folded == m.folded:
		return ScoreExactFold
	case m.wildcard != nil && m.wildcard.Match(title):
		return ScoreWildcard
	case m.wildcardFold != nil && m.wildcardFold.Match(folded):
		return ScoreWildcardFold
	case strings.HasPrefix(title, m.partial):
		return ScorePrefix
	case strings.HasPrefix(folded, m.folded):
		return ScorePrefixFold
	case strings.Contains(title, m.partial):
		return ScoreSubstring
	case strings.Contains(folded, m.folded):
		return ScoreSubstringFold
	}
	return ScoreNone
}
