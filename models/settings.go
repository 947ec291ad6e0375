package models

// Settings is the operator's panel configuration. It has its own lifecycle
// and is persisted apart from the roster.
type Settings struct {
	PanelTitle        string `json:"panelTitle"`
	LogoURL           string `json:"logoUrl"`
	AutoBackupEnabled bool   `json:"autoBackupEnabled"`
	RecoveryKey       string `json:"recoveryKey"`
	CloudSyncEnabled  bool   `json:"cloudSyncEnabled"`
	CloudSyncID       string `json:"cloudSyncId,omitempty"`
}

// SyncReady reports whether settings alone allow remote mode.
func (s Settings) SyncReady() bool {
	return s.CloudSyncEnabled && s.CloudSyncID != ""
}
