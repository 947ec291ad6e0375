package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-client-panel/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DD3FC"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171"))
	badgeStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#0F172A")).Background(lipgloss.Color("#7DD3FC"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#374151")).Padding(0, 1)
	headerCellStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)

	statusStyles = map[models.ClientStatus]lipgloss.Style{
		models.StatusActive:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
		models.StatusExpired:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		models.StatusExpiringSoon: lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
	}

	toastStyles = map[models.NoticeKind]lipgloss.Style{
		models.NoticeSuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#052E16")).Background(lipgloss.Color("#4ADE80")),
		models.NoticeInfo:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#0C4A6E")).Background(lipgloss.Color("#7DD3FC")),
		models.NoticeError:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#450A0A")).Background(lipgloss.Color("#F87171")),
	}

	actionStyles = map[models.HistoryAction]lipgloss.Style{
		models.ActionCreated: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
		models.ActionUpdated: lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
		models.ActionDeleted: lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		models.ActionRenewed: lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
		models.ActionSystem:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
)
