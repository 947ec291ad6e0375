package service

import (
	"time"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/crypto"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/utils"
)

// ClientServices bundles everything the dashboard needs.
type ClientServices struct {
	Roster      *RosterStore
	Projector   Projector
	Settings    *SettingsStore
	Backups     *BackupManager
	Session     *Session
	Assistant   PanelAssistant
	Spreadsheet SpreadsheetWriter
	Clock       utils.Clock
}

// ClientServicesDeps groups the outer collaborators of [NewClientServices].
type ClientServicesDeps struct {
	Storage  store.LocalStorage
	Bins     adapter.BinClient
	Envelope crypto.Envelope
	// Generator may be nil when no text generation backend is configured.
	Generator     adapter.TextGenerator
	Notifier      Notifier
	Clock         utils.Clock
	PersistWindow time.Duration
	Logger        *logger.Logger
}

// NewClientServices builds the service graph around one roster.
func NewClientServices(deps ClientServicesDeps) *ClientServices {
	roster := NewRosterStore(deps.Clock, utils.NewUUIDGenerator())
	settings := NewSettingsStore(deps.Storage, deps.Logger)
	backups := NewBackupManager(deps.Storage, deps.Clock, deps.Logger)

	session := NewSession(SessionDeps{
		Roster:        roster,
		Settings:      settings,
		Backups:       backups,
		Storage:       deps.Storage,
		Bins:          deps.Bins,
		Envelope:      deps.Envelope,
		Notifier:      deps.Notifier,
		Clock:         deps.Clock,
		Logger:        deps.Logger,
		PersistWindow: deps.PersistWindow,
	})

	return &ClientServices{
		Roster:      roster,
		Projector:   NewProjector(),
		Settings:    settings,
		Backups:     backups,
		Session:     session,
		Assistant:   NewAssistant(deps.Generator, deps.Logger),
		Spreadsheet: NewSpreadsheetWriter(),
		Clock:       deps.Clock,
	}
}
