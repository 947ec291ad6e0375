package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/models"
)

const noticeBuffer = 32

// NoticeQueue carries service notifications to the dashboard. It implements
// service.Notifier and can be handed to the services before the dashboard
// exists.
type NoticeQueue struct {
	ch chan models.Notice
}

func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{ch: make(chan models.Notice, noticeBuffer)}
}

// Notify never blocks. Notices arriving while the buffer is full are dropped.
func (q *NoticeQueue) Notify(n models.Notice) {
	select {
	case q.ch <- n:
	default:
	}
}

// wait delivers the next notice as a [noticeMsg]. It yields nil once ctx is
// done so the command goroutine does not outlive the program.
func (q *NoticeQueue) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-q.ch:
			return noticeMsg{notice: n}
		case <-ctx.Done():
			return nil
		}
	}
}
