package tui

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/winfocus/internal/focus"
)

// ErrCancelled is returned when the picker is closed without a selection.
var ErrCancelled = errors.New("picker cancelled")

// Source supplies windows to the picker. *focus.Engine satisfies it.
type Source interface {
	Complete(partial string) []focus.Candidate
	Windows() []focus.WindowRecord
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// picker is the bubbletea model for the live-ranking window picker.
// Every edit of the input re-enumerates windows through the source.
type picker struct {
	source Source
	input  textinput.Model

	candidates []focus.Candidate
	cursor     int

	chosen    *focus.Candidate
	cancelled bool

	width  int
	height int
}

func newPicker(source Source, initial string) picker {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "window title, pattern or handle"
	ti.SetValue(initial)
	ti.Focus()

	p := picker{source: source, input: ti}
	p.refresh()
	return p
}

// refresh re-ranks windows for the current input. An empty input lists
// every window by title so there is always something to choose from.
func (p *picker) refresh() {
	partial := p.input.Value()
	if partial == "" {
		windows := p.source.Windows()
		p.candidates = make([]focus.Candidate, 0, len(windows))
		for _, w := range windows {
			p.candidates = append(p.candidates, focus.Candidate{Title: w.Title, Handle: w.Handle})
		}
		sort.SliceStable(p.candidates, func(i, j int) bool {
			return p.candidates[i].Title < p.candidates[j].Title
		})
	} else {
		p.candidates = p.source.Complete(partial)
	}
	if p.cursor >= len(p.candidates) {
		p.cursor = len(p.candidates) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Init implements tea.Model.
func (p picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			p.cancelled = true
			return p, tea.Quit
		case "enter":
			if len(p.candidates) == 0 {
				return p, nil
			}
			c := p.candidates[p.cursor]
			p.chosen = &c
			return p, tea.Quit
		case "up", "ctrl+p", "ctrl+k":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+n", "ctrl+j", "tab":
			if p.cursor < len(p.candidates)-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.cursor = 0
		p.refresh()
	}
	return p, cmd
}

// visibleRows is how many candidates fit under the header and input.
func (p picker) visibleRows() int {
	rows := p.height - 4
	if p.height == 0 || rows > 20 {
		rows = 20
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View implements tea.Model.
func (p picker) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("winfocus"))
	sb.WriteString("\n")
	sb.WriteString(p.input.View())
	sb.WriteString("\n\n")

	if len(p.candidates) == 0 {
		sb.WriteString(dimStyle.Render("  no matching windows"))
		sb.WriteString("\n")
		return sb.String()
	}

	rows := p.visibleRows()
	start := 0
	if p.cursor >= rows {
		start = p.cursor - rows + 1
	}
	end := start + rows
	if end > len(p.candidates) {
		end = len(p.candidates)
	}

	for i := start; i < end; i++ {
		c := p.candidates[i]
		line := c.Display()
		if p.width > 8 && lipgloss.Width(line) > p.width-8 {
			line = truncate(line, p.width-8)
		}
		if i == p.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		if c.Score > 0 {
			line += " " + scoreStyle.Render(fmt.Sprintf("%d", c.Score))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d  ↑/↓ move · enter focus · esc cancel", p.cursor+1, len(p.candidates))))
	sb.WriteString("\n")
	return sb.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// Pick runs the picker on the terminal and returns the chosen candidate.
// Returns ErrCancelled when the user quits without choosing.
func Pick(source Source, initial string) (focus.Candidate, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return focus.Candidate{}, fmt.Errorf("picker requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	final, err := tea.NewProgram(newPicker(source, initial), tea.WithAltScreen()).Run()
	if err != nil {
		return focus.Candidate{}, err
	}
	p, ok := final.(picker)
	if !ok || p.chosen == nil {
		return focus.Candidate{}, ErrCancelled
	}
	return *p.chosen, nil
}
