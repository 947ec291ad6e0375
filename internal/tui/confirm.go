package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmation is a yes/no overlay guarding destructive actions.
type confirmation struct {
	title string
	body  []string
	yes   string
	// busy is shown while action runs.
	busy   string
	action func() tea.Cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.no):
		m.confirm = nil
	case key.Matches(msg, keys.yes):
		action := m.confirm.action
		m.busy = m.confirm.busy
		m.confirm = nil
		return m, action()
	}
	return m, nil
}

func (c *confirmation) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(c.body, "\n"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("[y/enter] " + c.yes + "   [n/esc] Cancelar"))
	return overlayBoxStyle.Render(b.String())
}
