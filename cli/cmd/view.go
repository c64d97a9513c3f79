package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lprof/log"
)

// View browses a captured profile report in an interactive pager.
type View struct {
	Paths []string `arg:"" help:"Report file(s) or '-' for stdin" name:"path" optional:""`
}

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	text, err := io.ReadAll(openReportFiles(v.Paths))
	if err != nil {
		return ErrReadReport.
			With(slog.String("paths", strings.Join(v.Paths, ", "))).
			Wrap(err)
	}

	m := newPager(string(text))

	log.DebugContext(ctx, "starting pager",
		slog.Int("lines", len(m.lines)),
		slog.Int("functions", len(m.index)),
	)

	_, err = tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	).Run()

	return err
}

// Styles.
var (
	pagerTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	pagerStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pagerMatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// indexEntry locates one function block within the report text.
type indexEntry struct {
	name string
	line int
}

// pager is the Bubble Tea model for the report viewer.
type pager struct {
	view      viewport.Model
	search    textinput.Model
	lines     []string
	index     []indexEntry
	matches   fuzzy.Matches
	matchIdx  int
	searching bool
	ready     bool
}

func newPager(text string) pager {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "function name"

	return pager{
		search: search,
		lines:  lines,
		index:  indexFunctions(lines),
	}
}

// indexFunctions records the position of every function block in the
// report by scanning for its "Function:" header line.
func indexFunctions(lines []string) []indexEntry {
	var index []indexEntry

	for i, line := range lines {
		name, ok := strings.CutPrefix(line, "Function: ")
		if !ok {
			continue
		}

		// Trim the trailing "at line N" location.
		if at := strings.LastIndex(name, " at line "); at >= 0 {
			name = name[:at]
		}

		index = append(index, indexEntry{name: name, line: i})
	}

	return index
}

func (m pager) Init() tea.Cmd {
	return nil
}

func (m pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Reserve one row each for the title and status bars.
		height := max(msg.Height-2, 1)

		if m.ready {
			m.view.Width = msg.Width
			m.view.Height = height
		} else {
			m.view = viewport.New(msg.Width, height)
			m.view.SetContent(strings.Join(m.lines, "\n"))
			m.ready = true
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

func (m pager) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			m.matches = matchFunctions(m.index, m.search.Value())
			m.matchIdx = 0
			m.jump()

			return m, nil

		case "esc", "ctrl+c":
			m.searching = false
			m.search.Blur()

			return m, nil
		}

		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.SetValue("")

		return m, m.search.Focus()

	case "n":
		m.cycle(+1)

		return m, nil

	case "N":
		m.cycle(-1)

		return m, nil
	}

	var cmd tea.Cmd

	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

// matchFunctions returns the function index entries whose names fuzzy-match
// the query, best match first.
func matchFunctions(index []indexEntry, query string) fuzzy.Matches {
	if query == "" {
		return nil
	}

	names := make([]string, len(index))
	for i, entry := range index {
		names[i] = entry.name
	}

	return fuzzy.Find(query, names)
}

// cycle advances the current match selection by delta and scrolls to it.
func (m *pager) cycle(delta int) {
	if len(m.matches) == 0 {
		return
	}

	m.matchIdx = (m.matchIdx + delta + len(m.matches)) % len(m.matches)
	m.jump()
}

// jump scrolls the viewport to the currently selected match.
func (m *pager) jump() {
	if len(m.matches) == 0 || !m.ready {
		return
	}

	entry := m.index[m.matches[m.matchIdx].Index]
	m.view.SetYOffset(entry.line)
}

func (m pager) View() string {
	if !m.ready {
		return "loading report..."
	}

	title := pagerTitleStyle.Render(
		fmt.Sprintf("report: %d functions", len(m.index)),
	)

	status := pagerStatusStyle.Render(
		"q quit  / search  n/N next/prev  arrows scroll",
	)

	if m.searching {
		status = m.search.View()
	} else if len(m.matches) > 0 {
		status = pagerMatchStyle.Render(fmt.Sprintf(
			"match %d/%d: %s",
			m.matchIdx+1,
			len(m.matches),
			m.index[m.matches[m.matchIdx].Index].name,
		)) + "  " + status
	}

	return title + "\n" + m.view.View() + "\n" + status
}
