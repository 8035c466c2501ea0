package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// styled applies the style only when w is a terminal, so piped and
// captured output stays plain.
func styled(w io.Writer, style lipgloss.Style, text string) string {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return style.Render(text)
	}
	return text
}
