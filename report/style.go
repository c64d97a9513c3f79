package report

import "github.com/charmbracelet/lipgloss"

// styles holds the optional terminal styling of report text.
// The zero value renders everything unstyled.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	miss   lipgloss.Style
}

// newStyles returns the report styles. Without color every style is the
// identity, preserving the plain deterministic output byte for byte.
func newStyles(color bool) styles {
	if !color {
		return styles{}
	}

	return styles{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		miss:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
