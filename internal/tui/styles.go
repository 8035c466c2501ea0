package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styles used in the TUI
type Styles struct {
	Title     lipgloss.Style
	Time      lipgloss.Style
	TimeEmpty lipgloss.Style
	Summary   lipgloss.Style
	Badge     map[string]lipgloss.Style
	Warning   lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Empty     lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")   // Purple
	secondary := lipgloss.Color("39") // Cyan
	muted := lipgloss.Color("240")    // Gray
	green := lipgloss.Color("82")
	orange := lipgloss.Color("214")
	warning := lipgloss.Color("196")

	badge := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(primary).Bold(true).Padding(0, 1),
		Time:      lipgloss.NewStyle().Foreground(secondary).Bold(true),
		TimeEmpty: lipgloss.NewStyle().Foreground(muted),
		Summary:   lipgloss.NewStyle(),
		Badge: map[string]lipgloss.Style{
			"commit":  badge(green),
			"working": badge(orange),
			"note":    badge(secondary),
		},
		Warning:   lipgloss.NewStyle().Foreground(warning),
		StatusBar: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		StatusKey: lipgloss.NewStyle().Foreground(secondary),
		Empty:     lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(1, 2),
	}
}
