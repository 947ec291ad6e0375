package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/models"
)

const (
	fieldNome = iota
	fieldLogin
	fieldSenha
	fieldServidor
	fieldVencimento
	fieldTelefone
	fieldCount
)

const brDateLayout = "02/01/2006"

var formFields = [fieldCount]struct {
	label       string
	placeholder string
}{
	{"Nome Completo", "Ex: João da Silva"},
	{"Login", "Ex: joao.silva"},
	{"Senha", "Senha de acesso do cliente"},
	{"Servidor", "Ex: Servidor BR-01"},
	{"Data de Vencimento", "DD/MM/AAAA"},
	{"Telefone (Opcional)", "Ex: (11) 98765-4321"},
}

type formModel struct {
	inputs  []textinput.Model
	focus   int
	editing *models.Client
	err     string
}

func newFormModel(client *models.Client, today models.Date) formModel {
	f := formModel{inputs: make([]textinput.Model, fieldCount), editing: client}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = formFields[i].placeholder
		ti.CharLimit = 128
		f.inputs[i] = ti
	}

	if client != nil {
		f.inputs[fieldNome].SetValue(client.Nome)
		f.inputs[fieldLogin].SetValue(client.Login)
		f.inputs[fieldSenha].SetValue(client.Senha)
		f.inputs[fieldServidor].SetValue(client.Servidor)
		f.inputs[fieldVencimento].SetValue(client.Vencimento.BR())
		f.inputs[fieldTelefone].SetValue(client.Telefone)
	} else {
		f.inputs[fieldVencimento].SetValue(today.BR())
	}
	f.inputs[fieldNome].Focus()
	return f
}

// parseFormDate accepts DD/MM/AAAA as typed by the operator and ISO dates as
// pasted from exports.
func parseFormDate(s string) (models.Date, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(brDateLayout, s); err == nil {
		return models.DateOf(t), true
	}
	if d, err := models.ParseDate(s); err == nil {
		return d, true
	}
	return models.Date{}, false
}

func (f formModel) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// input validates the form. The first problem found is returned as the
// message shown under the form.
func (f formModel) input() (models.ClientInput, string) {
	required := []struct {
		field int
		text  string
	}{
		{fieldNome, "O nome é obrigatório."},
		{fieldLogin, "O login é obrigatório."},
		{fieldServidor, "O servidor é obrigatório."},
		{fieldVencimento, "A data de vencimento é obrigatória."},
	}
	for _, r := range required {
		if f.value(r.field) == "" {
			return models.ClientInput{}, r.text
		}
	}

	due, ok := parseFormDate(f.value(fieldVencimento))
	if !ok {
		return models.ClientInput{}, "Data inválida. Use DD/MM/AAAA."
	}

	return models.ClientInput{
		Nome:       f.value(fieldNome),
		Login:      f.value(fieldLogin),
		Senha:      f.inputs[fieldSenha].Value(),
		Servidor:   f.value(fieldServidor),
		Vencimento: due,
		Telefone:   f.value(fieldTelefone),
	}, ""
}

func (f *formModel) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *formModel) setPassword(password string) {
	f.inputs[fieldSenha].SetValue(password)
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		cmd := m.form.setFocus(m.form.focus + 1)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.form.setFocus(m.form.focus - 1)
		return m, cmd
	case key.Matches(msg, keys.genPassword):
		m.busy = "Gerando senha com IA..."
		ctx, assistant := m.ctx, m.services.Assistant
		return m, func() tea.Msg {
			return passwordGeneratedMsg{text: assistant.StrongPassword(ctx)}
		}
	case key.Matches(msg, keys.enter) && m.form.focus < fieldCount-1:
		cmd := m.form.setFocus(m.form.focus + 1)
		return m, cmd
	case key.Matches(msg, keys.save), key.Matches(msg, keys.enter):
		input, problem := m.form.input()
		if problem != "" {
			m.form.err = problem
			return m, nil
		}
		m.form.err = ""
		return m, m.cmdSaveClient(input, m.form.editing)
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m model) cmdSaveClient(input models.ClientInput, editing *models.Client) tea.Cmd {
	roster := m.services.Roster
	return m.run(func() opDoneMsg {
		if editing == nil {
			if _, err := roster.Create(input); err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{text: "Cliente adicionado com sucesso!", switchScreen: true, next: screenList}
		}
		if err := roster.Update(input.WithID(editing.ID)); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{text: "Cliente atualizado com sucesso!", switchScreen: true, next: screenList}
	})
}

func (f formModel) View() string {
	var b strings.Builder
	title := "Adicionar Novo Cliente"
	if f.editing != nil {
		title = "Editar Cliente"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, in := range f.inputs {
		b.WriteString("\n")
		b.WriteString(formFields[i].label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
	}
	return panelStyle.Render(b.String())
}
