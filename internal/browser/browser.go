// Package browser is an interactive, scrollable view of a token listing.
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7C3AED")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

// Chrome above and below the viewport: title line and status + help lines.
const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the bubbletea model of the browser.
type Model struct {
	title    string
	content  string
	lines    int
	viewport viewport.Model
	help     help.Model
	ready    bool
}

// New returns a browser over content, a rendered token listing.
func New(title, content string) Model {
	content = strings.TrimSuffix(content, "\n")
	return Model{
		title:   title,
		content: content,
		lines:   strings.Count(content, "\n") + 1,
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case !m.ready:
			return m, nil
		case key.Matches(msg, keys.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, keys.PageUp):
			m.viewport.ViewUp()
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.viewport.ViewDown()
			return m, nil
		case key.Matches(msg, keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	status := statusStyle.Render(fmt.Sprintf("line %d of %d  %3.f%%",
		m.viewport.YOffset+1, m.lines, m.viewport.ScrollPercent()*100))
	return titleStyle.Render(m.title) + "\n\n" +
		m.viewport.View() + "\n" +
		status + "\n" +
		m.help.View(keys)
}

// Offset reports the index of the first visible line.
func (m Model) Offset() int {
	return m.viewport.YOffset
}

// Run opens the browser full screen and blocks until the user quits.
func Run(title, content string) error {
	p := tea.NewProgram(New(title, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("olex: browser: %w", err)
	}
	return nil
}
