package tui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/models"
)

const commandHelp = "Comandos: title <texto> • logo [url] • autobackup on|off • password <atual> <nova> • " +
	"recovery [chave] • sync enable <senha> | connect <id> <senha> | off | id • import <arquivo.json> • " +
	"backup export [arquivo] | list | restore <DD/MM/AAAA> • session restore • xlsx [arquivo] • reset • version"

// fileOpener abstracts the file system for import and export commands.
type fileOpener interface {
	Create(name string) (io.WriteCloser, error)
	Open(name string) (io.ReadCloser, error)
	Remove(name string) error
}

type osFiles struct{}

func (osFiles) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (osFiles) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }
func (osFiles) Remove(name string) error                   { return os.Remove(name) }

type commandModel struct {
	input  textinput.Model
	active bool
}

func newCommandModel() commandModel {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "help"
	ti.CharLimit = 512
	return commandModel{input: ti}
}

func (c *commandModel) open() tea.Cmd {
	c.active = true
	c.input.SetValue("")
	return c.input.Focus()
}

func (c *commandModel) close() {
	c.active = false
	c.input.Blur()
}

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.command.close()
		return m, nil
	case key.Matches(msg, keys.enter):
		line := strings.TrimSpace(m.command.input.Value())
		m.command.close()
		if line == "" {
			return m, nil
		}
		return m.runCommand(line)
	}
	var cmd tea.Cmd
	m.command.input, cmd = m.command.input.Update(msg)
	return m, cmd
}

// splitCommand separates the command word from its arguments and returns
// the raw argument text for commands taking free text.
func splitCommand(line string) (name string, args []string, rest string) {
	name, rest, _ = strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	return strings.ToLower(name), strings.Fields(rest), rest
}

func (m model) runCommand(line string) (tea.Model, tea.Cmd) {
	name, args, rest := splitCommand(line)
	ctx, session := m.ctx, m.services.Session

	switch {
	case name == "help":
		return m.toast(models.NoticeInfo, commandHelp)

	case name == "version":
		return m.toast(models.NoticeInfo, m.buildInfo.String())

	case name == "title":
		logo := m.settings.LogoURL
		return m, m.run(func() opDoneMsg {
			_, err := session.SetAppearance(ctx, rest, logo)
			return opDoneMsg{text: "Configurações salvas!", err: err, reload: true}
		})

	case name == "logo":
		title := m.settings.PanelTitle
		return m, m.run(func() opDoneMsg {
			_, err := session.SetAppearance(ctx, title, rest)
			return opDoneMsg{text: "Configurações salvas!", err: err, reload: true}
		})

	case name == "autobackup" && len(args) == 1 && (args[0] == "on" || args[0] == "off"):
		enabled := args[0] == "on"
		return m, m.run(func() opDoneMsg {
			_, err := session.SetAutoBackup(ctx, enabled)
			text := "Backup automático desativado."
			if enabled {
				text = "Backup automático ativado."
			}
			return opDoneMsg{kind: models.NoticeInfo, text: text, err: err, reload: true}
		})

	case name == "password" && len(args) == 2:
		current, next := args[0], args[1]
		return m, m.run(func() opDoneMsg {
			return opDoneMsg{err: session.ChangePassword(ctx, current, next)}
		})

	case name == "recovery":
		recoveryKey := rest
		body := []string{"A chave de recuperação atual será substituída.", "Guarde a nova chave em local seguro."}
		if recoveryKey == "" {
			body = []string{"A chave de recuperação será removida.", "Não será possível redefinir a senha sem ela."}
		}
		m.confirm = &confirmation{
			title: "Confirmar Chave de Recuperação",
			body:  body,
			yes:   "Sim, salvar",
			action: func() tea.Cmd {
				return m.run(func() opDoneMsg {
					return opDoneMsg{err: session.SetRecoveryKey(ctx, recoveryKey), reload: true}
				})
			},
		}
		return m, nil

	case name == "sync":
		return m.runSyncCommand(args)

	case name == "import" && rest != "":
		return m, m.cmdImport(rest)

	case name == "backup":
		return m.runBackupCommand(args)

	case name == "session" && len(args) == 1 && args[0] == "restore":
		m.confirm = &confirmation{
			title: "Confirmar Restauração da Sessão",
			body:  []string{"Todas as alterações feitas desde o login serão desfeitas."},
			yes:   "Sim, restaurar",
			action: func() tea.Cmd {
				return m.run(func() opDoneMsg { return opDoneMsg{err: session.RestoreSession()} })
			},
		}
		return m, nil

	case name == "xlsx":
		return m, m.cmdSpreadsheet(rest)

	case name == "reset":
		m.confirm = &confirmation{
			title:  "Redefinir Aplicativo",
			body:   []string{"Todos os clientes, o histórico, a senha e as configurações serão apagados.", "Esta ação não pode ser desfeita."},
			yes:    "Sim, apagar tudo",
			busy:   "Redefinindo...",
			action: m.cmdResetApp,
		}
		return m, nil
	}

	return m.toast(models.NoticeError, fmt.Sprintf("Comando desconhecido: %s. Digite help para ver os comandos.", line))
}

func (m model) runSyncCommand(args []string) (tea.Model, tea.Cmd) {
	ctx, session := m.ctx, m.services.Session

	switch {
	case len(args) == 2 && args[0] == "enable":
		password := args[1]
		m.busy = "Ativando sincronização..."
		return m, m.run(func() opDoneMsg {
			id, err := session.EnableSync(ctx, password)
			if err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{kind: models.NoticeInfo, text: "Seu ID de Sincronização: " + id, reload: true}
		})

	case len(args) == 3 && args[0] == "connect":
		id, password := args[1], args[2]
		m.busy = "Conectando à nuvem..."
		return m, m.run(func() opDoneMsg {
			return opDoneMsg{err: session.ConnectSync(ctx, id, password), reload: true}
		})

	case len(args) == 1 && args[0] == "off":
		m.confirm = &confirmation{
			title: "Confirmar Desconexão",
			body:  []string{"Os dados voltarão a ser salvos apenas neste computador.", "Os dados na nuvem não serão apagados."},
			yes:   "Sim, desconectar",
			action: func() tea.Cmd {
				return m.run(func() opDoneMsg {
					return opDoneMsg{err: session.DisconnectSync(ctx), reload: true}
				})
			},
		}
		return m, nil

	case len(args) == 1 && args[0] == "id":
		if !m.settings.SyncReady() {
			return m.toast(models.NoticeInfo, "Sincronização na nuvem desativada.")
		}
		return m.toast(models.NoticeInfo, "Seu ID de Sincronização: "+m.settings.CloudSyncID)
	}

	return m.toast(models.NoticeError, "Uso: sync enable <senha> | connect <id> <senha> | off | id")
}

func (m model) runBackupCommand(args []string) (tea.Model, tea.Cmd) {
	ctx, session := m.ctx, m.services.Session

	switch {
	case len(args) >= 1 && args[0] == "export":
		name := session.BackupFileName()
		if len(args) > 1 {
			name = args[1]
		}
		return m, m.cmdWriteFile(name, session.ExportBackup, "")

	case len(args) == 1 && args[0] == "list":
		return m, m.run(func() opDoneMsg {
			dates, err := session.DailyBackups(ctx)
			if err != nil {
				return opDoneMsg{err: err}
			}
			if len(dates) == 0 {
				return opDoneMsg{kind: models.NoticeInfo, text: "Nenhum backup diário disponível."}
			}
			labels := make([]string, len(dates))
			for i, d := range dates {
				labels[i] = d.BR()
			}
			return opDoneMsg{kind: models.NoticeInfo, text: "Backups disponíveis: " + strings.Join(labels, ", ")}
		})

	case len(args) == 2 && args[0] == "restore":
		date, ok := parseFormDate(args[1])
		if !ok {
			return m.toast(models.NoticeError, "Data inválida. Use DD/MM/AAAA.")
		}
		m.confirm = &confirmation{
			title: "Confirmar Restauração de Backup",
			body:  []string{fmt.Sprintf("Os dados atuais serão substituídos pelo backup de %s.", date.BR())},
			yes:   "Sim, restaurar",
			action: func() tea.Cmd {
				return m.run(func() opDoneMsg {
					return opDoneMsg{err: session.RestoreDailyBackup(ctx, date)}
				})
			},
		}
		return m, nil
	}

	return m.toast(models.NoticeError, "Uso: backup export [arquivo] | list | restore <DD/MM/AAAA>")
}

func (m model) cmdImport(name string) tea.Cmd {
	session, files := m.services.Session, m.files
	return m.run(func() opDoneMsg {
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			return opDoneMsg{kind: models.NoticeError, text: "Por favor, selecione um arquivo JSON válido."}
		}
		f, err := files.Open(name)
		if err != nil {
			return opDoneMsg{kind: models.NoticeError, text: "Erro ao ler o arquivo de dados."}
		}
		defer f.Close()

		err = session.ImportBackup(f)
		switch {
		case errors.Is(err, service.ErrValidation):
			return opDoneMsg{kind: models.NoticeError, text: "Arquivo de dados inválido ou corrompido."}
		case err != nil:
			return opDoneMsg{kind: models.NoticeError, text: "Erro ao ler o arquivo de dados."}
		}
		return opDoneMsg{}
	})
}

func (m model) cmdSpreadsheet(name string) tea.Cmd {
	if name == "" {
		name = service.SpreadsheetFileName(m.services.Clock)
	}
	visible, sheet := m.visible(), m.services.Spreadsheet
	return m.cmdWriteFile(name, func(w io.Writer) error {
		return sheet.WriteSpreadsheet(w, visible)
	}, "A lista de clientes foi exportada para Excel.")
}

// cmdWriteFile creates name and fills it with write. A file left behind by
// a failed write is removed.
func (m model) cmdWriteFile(name string, write func(io.Writer) error, success string) tea.Cmd {
	files := m.files
	return m.run(func() opDoneMsg {
		f, err := files.Create(name)
		if err != nil {
			return opDoneMsg{err: fmt.Errorf("create %s: %w", name, err)}
		}
		err = write(f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			if rmErr := files.Remove(name); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				err = errors.Join(err, rmErr)
			}
			return opDoneMsg{err: err}
		}
		return opDoneMsg{text: success}
	})
}
