package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/models"
)

const (
	renewDays     = service.DefaultRenewalDays
	minListRows   = 5
	listChromeRow = 16
)

var listColumns = []struct {
	title string
	width int
}{
	{"Nome", 22},
	{"Login", 16},
	{"Servidor", 14},
	{"Telefone", 16},
	{"Vencimento", 11},
	{"Status", 19},
	{"Dias", 5},
}

type listModel struct {
	query     models.Query
	search    textinput.Model
	searching bool
	cursor    int
	offset    int

	summary     string
	reminder    string
	reminderFor string
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "Buscar por nome, login ou telefone..."
	search.Prompt = "/ "
	return listModel{
		query:  models.Query{Filter: models.FilterAll, Sort: models.SortByName},
		search: search,
	}
}

// visible returns the projected roster after filter, search and sort.
func (m model) visible() []models.ClientWithStatus {
	return service.View(m.projected(), m.list.query)
}

func (m model) projected() []models.ClientWithStatus {
	return m.services.Projector.ProjectAll(m.services.Roster.Snapshot().Clients, m.today())
}

func (m model) pageSize() int {
	if rows := m.height - listChromeRow; rows > minListRows {
		return rows
	}
	return minListRows
}

func (m model) selected() (models.ClientWithStatus, bool) {
	visible := m.visible()
	if m.list.cursor < 0 || m.list.cursor >= len(visible) {
		return models.ClientWithStatus{}, false
	}
	return visible[m.list.cursor], true
}

func (l *listModel) moveCursor(delta, total, page int) {
	l.cursor += delta
	if l.cursor >= total {
		l.cursor = total - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+page {
		l.offset = l.cursor - page + 1
	}
}

func (l *listModel) resetCursor() {
	l.cursor, l.offset = 0, 0
}

func nextOf[T comparable](options []T, current T) T {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.list.query.Search = m.list.search.Value()
		m.list.resetCursor()
		return m, cmd
	}

	total, page := len(m.visible()), m.pageSize()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.moveCursor(-1, total, page)
	case key.Matches(msg, keys.down):
		m.list.moveCursor(1, total, page)
	case key.Matches(msg, keys.pageUp):
		m.list.moveCursor(-page, total, page)
	case key.Matches(msg, keys.pageDown):
		m.list.moveCursor(page, total, page)
	case key.Matches(msg, keys.esc):
		m.list.summary, m.list.reminder, m.list.reminderFor = "", "", ""
	case key.Matches(msg, keys.search):
		m.list.searching = true
		cmd := m.list.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.filter):
		m.list.query.Filter = nextOf(models.FilterOptions, m.list.query.Filter)
		m.list.resetCursor()
	case key.Matches(msg, keys.sort):
		m.list.query.Sort = nextOf(models.SortOptions, m.list.query.Sort)
		m.list.resetCursor()
	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(nil, m.today())
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if c, ok := m.selected(); ok {
			client := c.Client
			m.form = newFormModel(&client, m.today())
			m.screen = screenForm
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.renew):
		if c, ok := m.selected(); ok {
			m.confirm = m.confirmRenew(c.Client)
		}
	case key.Matches(msg, keys.delete):
		if c, ok := m.selected(); ok {
			m.confirm = m.confirmDelete(c.Client)
		}
	case key.Matches(msg, keys.remind):
		if c, ok := m.selected(); ok {
			m.busy = "Gerando mensagem com IA..."
			return m, m.cmdReminder(c.Client)
		}
	case key.Matches(msg, keys.summary):
		m.busy = "Gerando resumo com IA..."
		return m, m.cmdSummary()
	case key.Matches(msg, keys.history):
		m.history = historyModel{}
		m.screen = screenHistory
	case key.Matches(msg, keys.command):
		cmd := m.command.open()
		return m, cmd
	case key.Matches(msg, keys.logout):
		m.busy = "Saindo..."
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m model) confirmRenew(c models.Client) *confirmation {
	roster := m.services.Roster
	return &confirmation{
		title: "Confirmar Renovação",
		body:  []string{fmt.Sprintf("Tem certeza que deseja renovar a assinatura de %s por mais %d dias?", c.Nome, renewDays)},
		yes:   "Sim, renovar",
		action: func() tea.Cmd {
			return m.run(func() opDoneMsg {
				if _, err := roster.Renew(c.ID, renewDays); err != nil {
					return opDoneMsg{err: err}
				}
				return opDoneMsg{text: fmt.Sprintf("Assinatura de %s foi renovada.", c.Nome)}
			})
		},
	}
}

func (m model) confirmDelete(c models.Client) *confirmation {
	roster := m.services.Roster
	return &confirmation{
		title: "Confirmar Exclusão",
		body: []string{
			fmt.Sprintf("Tem certeza que deseja excluir o cliente %s?", c.Nome),
			"Esta ação não pode ser desfeita.",
		},
		yes: "Sim, excluir",
		action: func() tea.Cmd {
			return m.run(func() opDoneMsg {
				if !roster.Delete(c.ID) {
					return opDoneMsg{err: service.ErrClientNotFound}
				}
				return opDoneMsg{kind: models.NoticeInfo, text: fmt.Sprintf("Cliente %s foi excluído.", c.Nome)}
			})
		},
	}
}

func (m model) cmdReminder(c models.Client) tea.Cmd {
	ctx, assistant, copyText := m.ctx, m.services.Assistant, m.copyText
	return func() tea.Msg {
		text := assistant.RenewalReminder(ctx, c.Nome, c.Vencimento)
		return reminderMsg{client: c.Nome, text: text, copyErr: copyText(text)}
	}
}

func (m model) cmdSummary() tea.Cmd {
	ctx, assistant := m.ctx, m.services.Assistant
	stats := service.Stats(m.projected())
	return func() tea.Msg {
		return summaryMsg{text: assistant.DashboardSummary(ctx, stats)}
	}
}

func (m model) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return m.run(func() opDoneMsg {
		session.Logout(ctx)
		return opDoneMsg{switchScreen: true, next: screenLogin}
	})
}

// ── view ────────────────────────────────────────────────────────────────────

func cell(text string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(text)
}

func daysText(c models.ClientWithStatus) string {
	if c.DiasRestantes == nil {
		return "-"
	}
	return strconv.Itoa(*c.DiasRestantes)
}

func (m model) listView() string {
	var b strings.Builder

	stats := service.Stats(m.projected())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(fmt.Sprintf("Total de Clientes\n%d", stats.Total)),
		panelStyle.Render(statusStyles[models.StatusActive].Render(fmt.Sprintf("Ativos\n%d", stats.Active))),
		panelStyle.Render(statusStyles[models.StatusExpired].Render(fmt.Sprintf("Vencidos\n%d", stats.Expired))),
		panelStyle.Render(statusStyles[models.StatusExpiringSoon].Render(fmt.Sprintf("Próximo Vencimento\n%d", stats.ExpiringSoon))),
	))
	b.WriteString("\n\n")

	if m.list.searching || m.list.query.Search != "" {
		b.WriteString(m.list.search.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("Filtro: %s • Ordenar por: %s", m.list.query.Filter, m.list.query.Sort)))
	b.WriteString("\n\n")

	header := make([]string, 0, len(listColumns))
	for _, col := range listColumns {
		header = append(header, headerCellStyle.Render(cell(col.title, col.width)))
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(helpStyle.Render("Nenhum cliente encontrado."))
	}
	end := min(m.list.offset+m.pageSize(), len(visible))
	for i := m.list.offset; i < end; i++ {
		c := visible[i]
		row := strings.Join([]string{
			cell(c.Nome, listColumns[0].width),
			cell(c.Login, listColumns[1].width),
			cell(c.Servidor, listColumns[2].width),
			cell(c.Telefone, listColumns[3].width),
			cell(c.Vencimento.BR(), listColumns[4].width),
			statusStyles[c.Status].Render(cell(string(c.Status), listColumns[5].width)),
			cell(daysText(c), listColumns[6].width),
		}, " ")
		if i == m.list.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.list.summary != "" {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(titleStyle.Render("Resumo do Painel") + "\n" + m.list.summary))
	}
	if m.list.reminder != "" {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(titleStyle.Render("Lembrete para "+m.list.reminderFor) + "\n" + m.list.reminder))
	}
	return b.String()
}
