package focus

import (
	"sort"
	"strconv"
	"strings"

	"github.com/1broseidon/winfocus/internal/platform"
)

// Candidate is a window scored against a partial input.
type Candidate struct {
	Title  string          `json:"title"`
	Handle platform.Handle `json:"handle"`
	Score  int             `json:"score"`
}

// Display returns the suggestion text: the title with single quotes
// doubled, then the handle in parentheses. Resolve parses the handle back
// out of this form.
func (c Candidate) Display() string {
	return FormatDisplay(c.Title, c.Handle)
}

// Record returns the window the candidate was scored from.
func (c Candidate) Record() WindowRecord {
	return WindowRecord{Title: c.Title, Handle: c.Handle}
}

// FormatDisplay builds the "title (handle)" suggestion form.
func FormatDisplay(title string, handle platform.Handle) string {
	var sb strings.Builder
	sb.WriteString(strings.ReplaceAll(title, "'", "''"))
	sb.WriteString(" (")
	sb.WriteString(strconv.FormatUint(uint64(handle), 10))
	sb.WriteString(")")
	return sb.String()
}

// Rank scores every window against partial and returns the ones with a
// non-zero score, best first. Equal scores are ordered by title, then by
// handle. An empty partial matches nothing.
func Rank(partial string, windows []WindowRecord) []Candidate {
	out := make([]Candidate, 0, len(windows))
	if partial == "" || len(windows) == 0 {
		return out
	}

	m := newMatcher(partial)
	for _, w := range windows {
		score := m.score(w.Title)
		if score == ScoreNone {
			continue
		}
		out = append(out, Candidate{Title: w.Title, Handle: w.Handle, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}
