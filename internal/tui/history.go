package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/internal/utils"
)

const historyTimeLayout = "02/01/2006 15:04"

type historyModel struct {
	offset int
}

func (m model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.services.Roster.Snapshot().History)
	page := m.pageSize()

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.history), key.Matches(msg, keys.quit):
		m.screen = screenList
	case key.Matches(msg, keys.up):
		m.history.offset = max(m.history.offset-1, 0)
	case key.Matches(msg, keys.down):
		m.history.offset = max(min(m.history.offset+1, total-page), 0)
	case key.Matches(msg, keys.pageUp):
		m.history.offset = max(m.history.offset-page, 0)
	case key.Matches(msg, keys.pageDown):
		m.history.offset = max(min(m.history.offset+page, total-page), 0)
	}
	return m, nil
}

func (m model) historyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Histórico de Alterações"))
	b.WriteString("\n\n")

	history := m.services.Roster.Snapshot().History
	if len(history) == 0 {
		b.WriteString(helpStyle.Render("Nenhuma alteração registrada ainda."))
		return b.String()
	}

	end := min(m.history.offset+m.pageSize(), len(history))
	for _, e := range history[min(m.history.offset, end):end] {
		b.WriteString(helpStyle.Render(e.Timestamp.In(utils.PanelZone).Format(historyTimeLayout)))
		b.WriteString("  ")
		b.WriteString(actionStyles[e.Action].Render(cell(string(e.Action), 10)))
		b.WriteString(" ")
		b.WriteString(cell(e.ClientName, 24))
		b.WriteString(" ")
		b.WriteString(e.Details)
		b.WriteString("\n")
	}
	return b.String()
}
