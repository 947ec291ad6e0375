package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

type screen int

const (
	screenLogin screen = iota
	screenRecovery
	screenList
	screenForm
	screenHistory
)

type model struct {
	ctx       context.Context
	services  *service.ClientServices
	notices   *NoticeQueue
	copyText  func(string) error
	files     fileOpener
	buildInfo models.AppBuildInfo

	screen      screen
	width       int
	height      int
	settings    models.Settings
	remoteLogin bool
	syncActive  bool

	login    loginModel
	recovery recoveryModel
	list     listModel
	form     formModel
	history  historyModel
	command  commandModel
	confirm  *confirmation

	busy     string
	toasts   []toast
	toastSeq int
}

func newModel(ctx context.Context, services *service.ClientServices, notices *NoticeQueue, buildInfo models.AppBuildInfo) model {
	return model{
		buildInfo: buildInfo,
		ctx:       ctx,
		services:  services,
		notices:   notices,
		copyText:  clipboard.WriteAll,
		files:     osFiles{},
		screen:    screenLogin,
		login:     newLoginModel(),
		list:      newListModel(),
		command:   newCommandModel(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadSettings(), m.notices.wait(m.ctx))
}

func (m model) today() models.Date {
	return utils.Today(m.services.Clock)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case noticeMsg:
		cmd := m.pushToast(msg.notice.Kind, msg.notice.Message)
		return m, tea.Batch(cmd, m.notices.wait(m.ctx))

	case toastExpiredMsg:
		m.dropToast(msg.id)
		return m, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			return m.toast(models.NoticeError, errorText(msg.err))
		}
		m.settings, m.remoteLogin, m.syncActive = msg.settings, msg.remoteLogin, msg.syncActive
		return m, nil

	case loginDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.login.err = errorText(msg.err)
			m.login.input.SetValue("")
			return m, nil
		}
		m.login = newLoginModel()
		m.list = newListModel()
		m.screen = screenList
		return m, m.cmdLoadSettings()

	case opDoneMsg:
		return m.finishOp(msg)

	case reminderMsg:
		m.busy = ""
		m.list.reminder = msg.text
		m.list.reminderFor = msg.client
		if msg.copyErr != nil {
			return m.toast(models.NoticeError, "Não foi possível copiar a mensagem para a área de transferência.")
		}
		return m.toast(models.NoticeSuccess, "Mensagem copiada para a área de transferência!")

	case summaryMsg:
		m.busy = ""
		m.list.summary = msg.text
		return m, nil

	case passwordGeneratedMsg:
		m.busy = ""
		m.form.setPassword(msg.text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}
	if m.busy != "" {
		return m, nil
	}
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.command.active {
		return m.updateCommand(msg)
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRecovery:
		return m.updateRecovery(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateList(msg)
	}
}

// updateFocused forwards non-key messages, such as cursor blinks, to the
// input that has focus.
func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.command.active:
		m.command.input, cmd = m.command.input.Update(msg)
	case m.screen == screenLogin:
		m.login.input, cmd = m.login.input.Update(msg)
	case m.screen == screenRecovery:
		cmd = m.recovery.update(msg)
	case m.screen == screenForm:
		cmd = m.form.update(msg)
	case m.screen == screenList && m.list.searching:
		m.list.search, cmd = m.list.search.Update(msg)
	}
	return m, cmd
}

func (m model) finishOp(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	var cmds []tea.Cmd

	switch {
	case msg.err != nil:
		cmds = append(cmds, m.pushToast(models.NoticeError, errorText(msg.err)))
	case msg.text != "":
		kind := msg.kind
		if kind == "" {
			kind = models.NoticeSuccess
		}
		cmds = append(cmds, m.pushToast(kind, msg.text))
	}

	if msg.err == nil && msg.switchScreen {
		m.screen = msg.next
		if msg.next == screenLogin {
			m.login = newLoginModel()
		}
	}
	if msg.reload || msg.switchScreen {
		cmds = append(cmds, m.cmdLoadSettings())
	}
	return m, tea.Batch(cmds...)
}

// ── commands ────────────────────────────────────────────────────────────────

func (m model) cmdLoadSettings() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		settings, err := session.Settings(ctx)
		return settingsLoadedMsg{
			settings:    settings,
			remoteLogin: session.RemoteLogin(ctx),
			syncActive:  session.SyncActive(ctx),
			err:         err,
		}
	}
}

func (m model) run(fn func() opDoneMsg) tea.Cmd {
	return func() tea.Msg { return fn() }
}

// ── view ────────────────────────────────────────────────────────────────────

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.confirm.View())
	case m.screen == screenLogin:
		b.WriteString(m.loginView())
	case m.screen == screenRecovery:
		b.WriteString(m.recovery.View())
	case m.screen == screenForm:
		b.WriteString(m.form.View())
	case m.screen == screenHistory:
		b.WriteString(m.historyView())
	default:
		b.WriteString(m.listView())
	}

	if m.command.active {
		b.WriteString("\n\n")
		b.WriteString(m.command.input.View())
	}
	if m.busy != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("⏳ " + m.busy))
	}
	if toasts := renderToasts(m.toasts); toasts != "" {
		b.WriteString("\n\n")
		b.WriteString(toasts)
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpView()))

	return appStyle.Render(b.String())
}

func (m model) headerView() string {
	title := m.settings.PanelTitle
	if title == "" {
		title = service.DefaultPanelTitle
	}
	parts := []string{titleStyle.Render(title)}
	if m.syncActive {
		parts = append(parts, badgeStyle.Render("☁ Sincronizado"))
	}
	if m.settings.LogoURL != "" {
		parts = append(parts, helpStyle.Render(m.settings.LogoURL))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

func (m model) helpView() string {
	if m.confirm != nil {
		return ""
	}
	if m.command.active {
		return "enter executar • esc cancelar • help lista os comandos"
	}
	switch m.screen {
	case screenLogin:
		return "enter entrar • ctrl+r esqueci a senha • ctrl+x redefinir aplicativo • ctrl+c sair"
	case screenRecovery:
		return "tab próximo campo • enter redefinir • esc voltar"
	case screenForm:
		return "tab/↓ próximo • shift+tab/↑ anterior • ctrl+s salvar • ctrl+g gerar senha com IA • esc cancelar"
	case screenHistory:
		return "↑/↓ rolar • esc voltar"
	default:
		if m.list.searching {
			return "enter/esc concluir busca"
		}
		return "n novo • e editar • r renovar • d excluir • / buscar • f filtro • o ordem • a lembrete IA • s resumo IA • h histórico • : comando • l sair da conta • q fechar"
	}
}
