package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/models"
)

type loginModel struct {
	input textinput.Model
	err   string
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	return ti
}

func newLoginModel() loginModel {
	ti := newPasswordInput("Digite sua senha")
	ti.Focus()
	return loginModel{input: ti}
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		password := m.login.input.Value()
		m.login.err = ""
		m.busy = "Entrando..."
		if m.remoteLogin {
			m.busy = "Conectando à nuvem..."
		}
		ctx, session := m.ctx, m.services.Session
		return m, func() tea.Msg {
			return loginDoneMsg{err: session.Login(ctx, password)}
		}

	case key.Matches(msg, keys.recovery):
		m.recovery = newRecoveryModel()
		m.screen = screenRecovery
		return m, textinput.Blink

	case key.Matches(msg, keys.resetApp):
		m.confirm = &confirmation{
			title: "Redefinir Aplicativo",
			body: []string{
				"Todos os clientes, o histórico, a senha e as configurações serão apagados.",
				"Esta ação não pode ser desfeita.",
			},
			yes:    "Sim, apagar tudo",
			busy:   "Redefinindo...",
			action: m.cmdResetApp,
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m model) cmdResetApp() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return m.run(func() opDoneMsg {
		if err := session.ResetApp(ctx); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{
			kind:         models.NoticeInfo,
			text:         "O aplicativo foi redefinido.",
			switchScreen: true,
			next:         screenLogin,
		}
	})
}

func (m model) loginView() string {
	var b strings.Builder
	label := "Senha"
	if m.remoteLogin {
		label = "Senha de Sincronização"
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(m.login.input.View())
	if m.remoteLogin {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Os dados serão carregados da nuvem (ID " + m.settings.CloudSyncID + ")."))
	}
	if m.login.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.login.err))
	}
	return panelStyle.Render(b.String())
}

// ── recovery ────────────────────────────────────────────────────────────────

type recoveryModel struct {
	key      textinput.Model
	password textinput.Model
	focus    int
}

func newRecoveryModel() recoveryModel {
	k := textinput.New()
	k.Placeholder = "Chave de recuperação"
	k.Focus()
	return recoveryModel{key: k, password: newPasswordInput("Nova senha")}
}

func (r *recoveryModel) toggleFocus() {
	r.focus = 1 - r.focus
	if r.focus == 0 {
		r.password.Blur()
		r.key.Focus()
		return
	}
	r.key.Blur()
	r.password.Focus()
}

func (r *recoveryModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if r.focus == 0 {
		r.key, cmd = r.key.Update(msg)
	} else {
		r.password, cmd = r.password.Update(msg)
	}
	return cmd
}

func (m model) updateRecovery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenLogin
		return m, nil

	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.recovery.toggleFocus()
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.recovery.focus == 0 {
			m.recovery.toggleFocus()
			return m, nil
		}
		recoveryKey, next := strings.TrimSpace(m.recovery.key.Value()), m.recovery.password.Value()
		m.busy = "Redefinindo senha..."
		ctx, session := m.ctx, m.services.Session
		return m, m.run(func() opDoneMsg {
			if err := session.ResetPassword(ctx, recoveryKey, next); err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{switchScreen: true, next: screenLogin}
		})
	}

	cmd := m.recovery.update(msg)
	return m, cmd
}

func (r recoveryModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Redefinir Senha"))
	b.WriteString("\n\nChave de Recuperação\n")
	b.WriteString(r.key.View())
	b.WriteString("\n\nNova Senha\n")
	b.WriteString(r.password.View())
	return panelStyle.Render(b.String())
}
