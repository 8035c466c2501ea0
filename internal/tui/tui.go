// Package tui provides an interactive preview of the day's merged
// activity entries.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/dayreport/internal/pipeline"
	"github.com/xolan/dayreport/internal/report"
)

// collectedMsg carries a finished collection back into the update loop.
type collectedMsg struct {
	entries  []report.Entry
	warnings []pipeline.Warning
}

// Model is the root TUI model
type Model struct {
	opts pipeline.Options

	entries  []report.Entry
	warnings []pipeline.Warning
	loading  bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	keys   KeyMap
	styles Styles
}

// New creates a new TUI model for the given pipeline options.
func New(opts pipeline.Options) Model {
	return Model{
		opts:    opts,
		loading: true,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.collect
}

// collect runs the pipeline's collection step off the update loop.
func (m Model) collect() tea.Msg {
	entries, warnings := pipeline.Collect(context.Background(), m.opts)
	return collectedMsg{entries: entries, warnings: warnings}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.collect
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 3 // title and status bar
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.contentView())
		return m, nil

	case collectedMsg:
		m.entries = msg.entries
		m.warnings = msg.warnings
		m.loading = false
		if m.ready {
			m.viewport.SetContent(m.contentView())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("dayreport %s", m.opts.Date.Format("2006-01-02")))

	body := m.contentView()
	if m.ready {
		body = m.viewport.View()
	}

	status := m.statusView()
	return title + "\n" + body + "\n" + status
}

// contentView renders the entry list with one line per entry.
func (m Model) contentView() string {
	if m.loading {
		return m.styles.Empty.Render("Collecting...")
	}

	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString(m.styles.Empty.Render("No activity recorded for this day") + "\n")
	}
	for _, e := range m.entries {
		timeStyle := m.styles.Time
		if !e.Timed {
			timeStyle = m.styles.TimeEmpty
		}
		badgeStyle, ok := m.styles.Badge[string(e.Source.Kind)]
		if !ok {
			badgeStyle = m.styles.Summary
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(e.TimeLabel()),
			badgeStyle.Render("["+e.Source.String()+"]"),
			m.styles.Summary.Render(e.Summary),
		)
	}
	for _, w := range m.warnings {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("! %s: %v", w.Source, w.Err)) + "\n")
	}
	return b.String()
}

// statusView renders the key help line.
func (m Model) statusView() string {
	count := fmt.Sprintf("%d entries", len(m.entries))
	if len(m.entries) == 1 {
		count = "1 entry"
	}
	help := fmt.Sprintf("%s  %s refresh  %s quit",
		count,
		m.styles.StatusKey.Render("r"),
		m.styles.StatusKey.Render("q"),
	)
	return m.styles.StatusBar.Render(help)
}

// Run starts the TUI program.
func Run(opts pipeline.Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
