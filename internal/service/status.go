package service

import (
	"github.com/MKhiriev/go-client-panel/models"
)

// DefaultExpirationThreshold is how many days before the due date a client
// is reported as [models.StatusExpiringSoon].
const DefaultExpirationThreshold = 7

// Projector derives the status of clients for a given day.
type Projector struct {
	// Threshold is the expiring-soon window in days.
	Threshold int
}

// NewProjector returns a Projector using [DefaultExpirationThreshold].
func NewProjector() Projector {
	return Projector{Threshold: DefaultExpirationThreshold}
}

// Project computes status and remaining days of client as seen on today.
// It is a pure function of its inputs.
func (p Projector) Project(client models.Client, today models.Date) models.ClientWithStatus {
	days := models.DaysBetween(today, client.Vencimento)

	projected := models.ClientWithStatus{Client: client}
	switch {
	case days < 0:
		projected.Status = models.StatusExpired
	case days <= p.Threshold:
		projected.Status = models.StatusExpiringSoon
		projected.DiasRestantes = &days
	default:
		projected.Status = models.StatusActive
		projected.DiasRestantes = &days
	}

	return projected
}

// ProjectAll projects every client, preserving order.
func (p Projector) ProjectAll(clients []models.Client, today models.Date) []models.ClientWithStatus {
	out := make([]models.ClientWithStatus, len(clients))
	for i, c := range clients {
		out[i] = p.Project(c, today)
	}
	return out
}

// Stats counts the projected roster by status.
func Stats(projected []models.ClientWithStatus) models.DashboardStats {
	stats := models.DashboardStats{Total: len(projected)}
	for _, c := range projected {
		switch c.Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusExpired:
			stats.Expired++
		case models.StatusExpiringSoon:
			stats.ExpiringSoon++
		}
	}
	return stats
}
