package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

const pagerReport = `Timer unit: 1e-09 s

Total time in demo.work: 0.001 s
File: /tmp/demo.go
Function: demo.work at line 3

Total time in demo.idle: 0.000 s
File: /tmp/demo.go
Function: demo.idle at line 12
`

func TestIndexFunctions(t *testing.T) {
	lines := strings.Split(pagerReport, "\n")

	index := indexFunctions(lines)
	if len(index) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(index))
	}

	if index[0].name != "demo.work" {
		t.Errorf("expected demo.work, got %q", index[0].name)
	}

	if index[1].name != "demo.idle" {
		t.Errorf("expected demo.idle, got %q", index[1].name)
	}

	if index[0].line >= index[1].line {
		t.Error("expected index entries in report order")
	}
}

func TestMatchFunctions(t *testing.T) {
	index := []indexEntry{
		{name: "demo.work", line: 2},
		{name: "demo.idle", line: 7},
	}

	matches := matchFunctions(index, "idle")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	if got := index[matches[0].Index].name; got != "demo.idle" {
		t.Errorf("matched %q, want demo.idle", got)
	}

	if matches := matchFunctions(index, ""); matches != nil {
		t.Error("expected no matches for empty query")
	}
}

func resized(t *testing.T, m pager) pager {
	t.Helper()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	p, ok := next.(pager)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}

	return p
}

func TestPagerQuit(t *testing.T) {
	m := resized(t, newPager(pagerReport))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestPagerSearchJump(t *testing.T) {
	// Pad the report so the viewport can actually scroll to the target;
	// SetYOffset clamps to the bottom of short content.
	long := pagerReport + strings.Repeat("...\n", 100) +
		"Total time in demo.tail: 0.002 s\n" +
		"File: /tmp/demo.go\n" +
		"Function: demo.tail at line 40\n"

	m := resized(t, newPager(long))

	// Enter search mode and type a query.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = next.(pager)

	if !m.searching {
		t.Fatal("expected search mode after '/'")
	}

	for _, r := range "idle" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(pager)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(pager)

	if m.searching {
		t.Fatal("expected search mode to end on enter")
	}

	if len(m.matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.matches))
	}

	if got := m.index[m.matches[0].Index].name; got != "demo.idle" {
		t.Errorf("jumped to %q, want demo.idle", got)
	}

	if m.view.YOffset != m.index[m.matches[0].Index].line {
		t.Errorf("viewport at %d, want %d",
			m.view.YOffset, m.index[m.matches[0].Index].line)
	}
}

func TestPagerViewStatus(t *testing.T) {
	m := resized(t, newPager(pagerReport))

	out := m.View()
	if !strings.Contains(out, "2 functions") {
		t.Errorf("view missing function count:\n%s", out)
	}
}
