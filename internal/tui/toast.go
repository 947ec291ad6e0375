package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/models"
)

const (
	toastTTL  = 4 * time.Second
	maxToasts = 3
)

type toast struct {
	id   int
	kind models.NoticeKind
	text string
}

func (m *model) pushToast(kind models.NoticeKind, text string) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq

	m.toasts = append(m.toasts, toast{id: id, kind: kind, text: text})
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}

	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// toast is pushToast for Update handlers returning the model by value.
func (m model) toast(kind models.NoticeKind, text string) (model, tea.Cmd) {
	cmd := m.pushToast(kind, text)
	return m, cmd
}

func (m *model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
			return
		}
	}
}

func renderToasts(toasts []toast) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		lines = append(lines, toastStyles[t.kind].Render(t.text))
	}
	return strings.Join(lines, "\n")
}
