package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-client-panel/models"
)

// Notifier shows one-shot messages to the operator.
type Notifier interface {
	Notify(notice models.Notice)
}

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(models.Notice)

// Notify implements [Notifier].
func (f NotifierFunc) Notify(n models.Notice) { f(n) }

// SpreadsheetWriter renders the status-annotated roster as a spreadsheet.
type SpreadsheetWriter interface {
	WriteSpreadsheet(w io.Writer, clients []models.ClientWithStatus) error
}

// PanelAssistant produces operator-facing texts. Its methods never fail:
// problems are answered with a fixed fallback text.
type PanelAssistant interface {
	RenewalReminder(ctx context.Context, clientName string, due models.Date) string
	DashboardSummary(ctx context.Context, stats models.DashboardStats) string
	StrongPassword(ctx context.Context) string
}

// AppInfoService reports build information of the bin server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BinService stores opaque encrypted documents for the bin server.
type BinService interface {
	// CreateBin stores bin under id and fails when id is taken.
	CreateBin(ctx context.Context, id string, bin models.Bin) error
	GetBin(ctx context.Context, id string) (models.Bin, error)
	// PutBin overwrites bin under id, creating it when absent.
	PutBin(ctx context.Context, id string, bin models.Bin) error
}

// BinServiceWrapper decorates a BinService with extra behaviour such as
// validation.
type BinServiceWrapper interface {
	Wrap(BinService) BinService
}
