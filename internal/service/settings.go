package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/models"
)

// Keys of the panel's local storage.
const (
	PasswordKey       = "app_manager_password"
	SettingsKey       = "app_manager_settings_v3"
	DataKey           = "client_manager_data_v2"
	DailyBackupPrefix = "client_manager_backup_"
)

const (
	DefaultPanelPassword = "admin"
	DefaultPanelTitle    = "Gerenciador de Clientes Pro"
)

// DefaultSettings is what a first run starts with.
func DefaultSettings() models.Settings {
	return models.Settings{
		PanelTitle:        DefaultPanelTitle,
		AutoBackupEnabled: true,
	}
}

// storedSettings mirrors models.Settings with every field optional, so that
// each one falls back to its default on its own.
type storedSettings struct {
	PanelTitle        *string `json:"panelTitle"`
	LogoURL           *string `json:"logoUrl"`
	AutoBackupEnabled *bool   `json:"autoBackupEnabled"`
	RecoveryKey       *string `json:"recoveryKey"`
	CloudSyncEnabled  *bool   `json:"cloudSyncEnabled"`
	CloudSyncID       *string `json:"cloudSyncId"`
}

func (s storedSettings) resolve() models.Settings {
	out := DefaultSettings()
	if s.PanelTitle != nil && *s.PanelTitle != "" {
		out.PanelTitle = *s.PanelTitle
	}
	if s.LogoURL != nil {
		out.LogoURL = *s.LogoURL
	}
	if s.AutoBackupEnabled != nil {
		out.AutoBackupEnabled = *s.AutoBackupEnabled
	}
	if s.RecoveryKey != nil {
		out.RecoveryKey = *s.RecoveryKey
	}
	if s.CloudSyncEnabled != nil {
		out.CloudSyncEnabled = *s.CloudSyncEnabled
	}
	if s.CloudSyncID != nil {
		out.CloudSyncID = *s.CloudSyncID
	}
	return out
}

// decodeSettings never fails: a field that is missing or has the wrong type
// keeps its default, and an unreadable document gives all defaults.
func decodeSettings(raw string) (models.Settings, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return DefaultSettings(), false
	}

	var stored storedSettings
	clean := true
	for name, target := range map[string]any{
		"panelTitle":        &stored.PanelTitle,
		"logoUrl":           &stored.LogoURL,
		"autoBackupEnabled": &stored.AutoBackupEnabled,
		"recoveryKey":       &stored.RecoveryKey,
		"cloudSyncEnabled":  &stored.CloudSyncEnabled,
		"cloudSyncId":       &stored.CloudSyncID,
	} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			clean = false
		}
	}
	return stored.resolve(), clean
}

// SettingsStore keeps the panel settings and the panel password in local
// storage. Settings have their own lifecycle, apart from the roster.
type SettingsStore struct {
	storage store.LocalStorage
	logger  *logger.Logger

	mu sync.Mutex
}

// NewSettingsStore returns a SettingsStore over storage.
func NewSettingsStore(storage store.LocalStorage, logger *logger.Logger) *SettingsStore {
	return &SettingsStore{storage: storage, logger: logger}
}

// Load returns the stored settings, falling back to defaults field by field.
func (s *SettingsStore) Load(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

func (s *SettingsStore) loadLocked(ctx context.Context) (models.Settings, error) {
	raw, ok, err := s.storage.Get(ctx, SettingsKey)
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return DefaultSettings(), nil
	}

	settings, clean := decodeSettings(raw)
	if !clean {
		s.logger.Warn().Str("func", "SettingsStore.Load").Msg("stored settings are corrupted, using defaults for unreadable fields")
	}
	return settings, nil
}

// Save overwrites the stored settings.
func (s *SettingsStore) Save(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx, settings)
}

func (s *SettingsStore) saveLocked(ctx context.Context, settings models.Settings) error {
	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err = s.storage.Set(ctx, SettingsKey, string(body)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Update applies fn to the current settings and stores the result.
func (s *SettingsStore) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.loadLocked(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	fn(&settings)
	if strings.TrimSpace(settings.PanelTitle) == "" {
		settings.PanelTitle = DefaultPanelTitle
	}
	if err = s.saveLocked(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Password returns the panel password, [DefaultPanelPassword] until one is
// set.
func (s *SettingsStore) Password(ctx context.Context) (string, error) {
	pw, ok, err := s.storage.Get(ctx, PasswordKey)
	if err != nil {
		return "", fmt.Errorf("load panel password: %w", err)
	}
	if !ok || pw == "" {
		return DefaultPanelPassword, nil
	}
	return pw, nil
}

// SetPassword stores a new panel password.
func (s *SettingsStore) SetPassword(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := s.storage.Set(ctx, PasswordKey, password); err != nil {
		return fmt.Errorf("save panel password: %w", err)
	}
	return nil
}
