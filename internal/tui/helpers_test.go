package tui

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/crypto"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

const testToday = "2024-01-10"

type memFiles struct {
	files map[string]*bytes.Buffer
}

type memFile struct {
	*bytes.Buffer
}

func (memFile) Close() error { return nil }

func newMemFiles() *memFiles {
	return &memFiles{files: map[string]*bytes.Buffer{}}
}

func (f *memFiles) Create(name string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	f.files[name] = buf
	return memFile{buf}, nil
}

func (f *memFiles) Open(name string) (io.ReadCloser, error) {
	buf, ok := f.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func (f *memFiles) Remove(name string) error {
	delete(f.files, name)
	return nil
}

type testPanel struct {
	services *service.ClientServices
	notices  *NoticeQueue
	files    *memFiles
	copied   []string
}

func newTestModel(t *testing.T) (model, *testPanel) {
	t.Helper()
	ctx := context.Background()

	notices := NewNoticeQueue()
	services := service.NewClientServices(service.ClientServicesDeps{
		Storage:       store.NewMemoryLocalStorage(),
		Bins:          adapter.NewDisabledBinClient(),
		Envelope:      crypto.NewEnvelope(0),
		Notifier:      notices,
		Clock:         utils.ClockAt(models.MustParseDate(testToday)),
		PersistWindow: time.Millisecond,
		Logger:        logger.Nop(),
	})
	require.NoError(t, services.Session.LoadRoster(ctx))
	t.Cleanup(services.Session.Close)

	panel := &testPanel{services: services, notices: notices, files: newMemFiles()}
	m := newModel(ctx, services, notices, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	m.files = panel.files
	m.copyText = func(s string) error {
		panel.copied = append(panel.copied, s)
		return nil
	}
	m.width, m.height = 140, 40
	return m, panel
}

// loggedIn returns a model sitting on the client list.
func loggedIn(t *testing.T) (model, *testPanel) {
	t.Helper()
	m, panel := newTestModel(t)
	m = typeText(t, m, service.DefaultPanelPassword)
	m = runCmd(t, press(t, m, "enter"))
	require.Equal(t, screenList, m.screen)
	return m, panel
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

type step struct {
	m   model
	cmd tea.Cmd
}

func update(t *testing.T, m model, msg tea.Msg) step {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return step{m: out, cmd: cmd}
}

func press(t *testing.T, m model, k string) step {
	t.Helper()
	return update(t, m, keyMsg(k))
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}).m
}

// runCmd executes an operation command and feeds its message back. Only
// direct commands are run; the batches they answer with hold timers.
func runCmd(t *testing.T, s step) model {
	t.Helper()
	require.NotNil(t, s.cmd)
	return update(t, s.m, s.cmd()).m
}

func toastTexts(m model) []string {
	out := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		out = append(out, t.text)
	}
	return out
}
