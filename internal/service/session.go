// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/crypto"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/internal/workers"
	"github.com/MKhiriev/go-client-panel/models"
)

// DefaultPersistWindow is the quiescence window of the persistence observer.
const DefaultPersistWindow = time.Second

// History details of the restores done by the session.
const (
	detailsCloudSync     = "Dados sincronizados da nuvem."
	detailsImport        = "Dados importados de arquivo com sucesso!"
	detailsSessionReset  = "Sessão restaurada para o estado de início."
	detailsDailyBackupFn = "Restaurado do backup de %s."
)

// Session orchestrates login, persistence and restores around one
// [RosterStore].
//
// Persistence runs in one of two modes picked from the settings at the time
// of every write: remote when sync is enabled with a bin id, a session
// password is known and the bin client is configured; local otherwise. The
// roster change stream is observed through a [workers.Debouncer], so a burst
// of edits results in one write of the latest snapshot.
type Session struct {
	roster   *RosterStore
	settings *SettingsStore
	backups  *BackupManager
	storage  store.LocalStorage
	bins     adapter.BinClient
	envelope crypto.Envelope
	notifier Notifier
	clock    utils.Clock
	logger   *logger.Logger

	debouncer   *workers.Debouncer
	unsubscribe func()

	mu           sync.Mutex
	loggedIn     bool
	syncPassword string
	initial      *models.Snapshot

	// persistMu serializes writes; persisted is the last version written.
	persistMu sync.Mutex
	persisted uint64
}

// SessionDeps groups the collaborators of a [Session].
type SessionDeps struct {
	Roster   *RosterStore
	Settings *SettingsStore
	Backups  *BackupManager
	Storage  store.LocalStorage
	Bins     adapter.BinClient
	Envelope crypto.Envelope
	Notifier Notifier
	Clock    utils.Clock
	Logger   *logger.Logger
	// PersistWindow defaults to [DefaultPersistWindow].
	PersistWindow time.Duration
}

// NewSession wires a Session and subscribes it to the roster. The returned
// session persists nothing until its [Session.Worker] runs.
func NewSession(deps SessionDeps) *Session {
	window := deps.PersistWindow
	if window <= 0 {
		window = DefaultPersistWindow
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = NotifierFunc(func(models.Notice) {})
	}

	s := &Session{
		roster:   deps.Roster,
		settings: deps.Settings,
		backups:  deps.Backups,
		storage:  deps.Storage,
		bins:     deps.Bins,
		envelope: deps.Envelope,
		notifier: notifier,
		clock:    deps.Clock,
		logger:   deps.Logger,
	}
	s.debouncer = workers.NewDebouncer(window, s.persist)
	s.unsubscribe = s.roster.Subscribe(func(uint64) { s.debouncer.Trigger() })
	return s
}

// Worker returns the persistence observer. It must be run for changes to
// reach storage.
func (s *Session) Worker() workers.Worker {
	return s.debouncer
}

// Close detaches the session from the roster change stream.
func (s *Session) Close() {
	s.unsubscribe()
}

// LoadRoster fills the roster from the live local data, or with the demo
// roster when there is none or it cannot be read.
func (s *Session) LoadRoster(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, DataKey)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	if ok {
		snapshot, err := DecodeSnapshot([]byte(raw))
		if err == nil {
			s.roster.Load(snapshot)
			return nil
		}
		s.logger.Warn().Err(err).Str("func", "Session.LoadRoster").Msg("stored roster is unreadable, starting from demo data")
	}
	s.roster.Load(SeedSnapshot(utils.Today(s.clock)))
	return nil
}

// LoggedIn reports whether the operator is logged in.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Settings returns the current settings.
func (s *Session) Settings(ctx context.Context) (models.Settings, error) {
	return s.settings.Load(ctx)
}

// RemoteLogin reports whether the next login goes through the remote bin.
func (s *Session) RemoteLogin(ctx context.Context) bool {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return false
	}
	return settings.SyncReady() && s.bins.Configured()
}

// SyncActive reports whether persistence currently goes to the remote bin.
func (s *Session) SyncActive(ctx context.Context) bool {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteModeLocked(settings)
}

func (s *Session) remoteModeLocked(settings models.Settings) bool {
	return settings.SyncReady() && s.syncPassword != "" && s.bins.Configured()
}

// ── login ───────────────────────────────────────────────────────────────────

// Login authenticates the operator. In remote mode the password must open
// the remote bin, whose contents then replace the roster; otherwise it must
// match the panel password.
func (s *Session) Login(ctx context.Context, password string) error {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}

	if settings.SyncReady() && s.bins.Configured() {
		snapshot, err := s.fetchRemote(ctx, settings.CloudSyncID, password, ErrWrongSyncPassword)
		if err != nil {
			return err
		}
		s.roster.RestoreAll(snapshot, detailsCloudSync)

		s.mu.Lock()
		s.syncPassword = password
		s.mu.Unlock()
		s.startSession(ctx)
		s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Conectado e sincronizado com a nuvem!"})
		return nil
	}

	stored, err := s.settings.Password(ctx)
	if err != nil {
		return err
	}
	if password != stored {
		return ErrWrongPassword
	}
	s.startSession(ctx)
	return nil
}

func (s *Session) startSession(ctx context.Context) {
	initial := s.roster.Snapshot().Clone()

	s.mu.Lock()
	s.loggedIn = true
	s.initial = &initial
	s.mu.Unlock()

	s.persistMu.Lock()
	s.persisted = 0
	s.persistMu.Unlock()

	if err := s.backups.Rotate(ctx); err != nil {
		s.logger.Err(err).Str("func", "Session.startSession").Msg("daily backup rotation failed")
	}
	s.debouncer.Trigger()
}

// Logout writes pending changes and ends the session.
func (s *Session) Logout(ctx context.Context) {
	s.persist(ctx)

	s.mu.Lock()
	s.loggedIn = false
	s.syncPassword = ""
	s.initial = nil
	s.mu.Unlock()
}

// fetchRemote downloads and opens the bin. A blob that does not open with
// password is reported as wrongPassword.
func (s *Session) fetchRemote(ctx context.Context, id, password string, wrongPassword error) (models.Snapshot, error) {
	blob, err := s.bins.GetBin(ctx, id)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch remote data: %w", err)
	}

	plaintext, ok := s.envelope.Decrypt(blob, password)
	if !ok {
		return models.Snapshot{}, wrongPassword
	}
	snapshot, err := DecodeSnapshot(plaintext)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", adapter.ErrInvalidFormat, err)
	}
	return snapshot, nil
}

// ── persistence ─────────────────────────────────────────────────────────────

// persist writes the latest snapshot in the mode selected by the current
// settings. Failures are reported once through the notifier and leave the
// roster untouched.
func (s *Session) persist(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	loggedIn, password := s.loggedIn, s.syncPassword
	s.mu.Unlock()
	if !loggedIn {
		return
	}

	snapshot, version := s.roster.Current()
	if version == s.persisted {
		return
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.persist").Msg("cannot read settings")
		s.notifyError("Falha ao salvar os dados: %v", err)
		return
	}

	if settings.SyncReady() && password != "" && s.bins.Configured() {
		if err = s.pushRemote(ctx, settings.CloudSyncID, password, snapshot); err != nil {
			s.logger.Err(err).Str("func", "Session.persist").Str("bin", settings.CloudSyncID).Msg("remote sync failed")
			s.notifyError("Sinc. automática falhou: %v", err)
			return
		}
		s.persisted = version
		return
	}

	if !settings.AutoBackupEnabled {
		return
	}
	if err = s.writeLocal(ctx, snapshot); err != nil {
		s.logger.Err(err).Str("func", "Session.persist").Msg("local save failed")
		s.notifyError("Falha ao salvar os dados: %v", err)
		return
	}
	s.persisted = version

	if err = s.backups.Rotate(ctx); err != nil {
		s.logger.Err(err).Str("func", "Session.persist").Msg("daily backup rotation failed")
	}
}

func (s *Session) pushRemote(ctx context.Context, id, password string, snapshot models.Snapshot) error {
	blob, err := s.envelope.Encrypt(snapshot, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	return s.bins.UpdateBin(ctx, id, blob)
}

func (s *Session) writeLocal(ctx context.Context, snapshot models.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return s.storage.Set(ctx, DataKey, string(body))
}

func (s *Session) notifyError(format string, args ...any) {
	s.notifier.Notify(models.Notice{Kind: models.NoticeError, Message: fmt.Sprintf(format, args...)})
}

func (s *Session) requireLogin() error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

// ── cloud sync ──────────────────────────────────────────────────────────────

// EnableSync uploads the current roster encrypted with password into a new
// bin and switches persistence to remote mode. It returns the bin id the
// operator needs on other devices.
func (s *Session) EnableSync(ctx context.Context, password string) (string, error) {
	if err := s.requireLogin(); err != nil {
		return "", err
	}
	if !s.bins.Configured() {
		return "", fmt.Errorf("%w: %w", ErrSyncNotAvailable, adapter.ErrNotConfigured)
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	snapshot, version := s.roster.Current()
	blob, err := s.envelope.Encrypt(snapshot, password)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	id, err := s.bins.CreateBin(ctx, blob)
	if err != nil {
		return "", fmt.Errorf("create remote bin: %w", err)
	}

	if _, err = s.settings.Update(ctx, func(st *models.Settings) {
		st.CloudSyncEnabled = true
		st.CloudSyncID = id
	}); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.syncPassword = password
	s.mu.Unlock()
	s.persisted = version

	s.logger.Info().Str("func", "Session.EnableSync").Str("bin", id).Msg("cloud sync enabled")
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Sincronização na nuvem ativada com sucesso!"})
	return id, nil
}

// ConnectSync replaces the roster with the contents of an existing bin and
// switches persistence to remote mode.
func (s *Session) ConnectSync(ctx context.Context, id, password string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if !s.bins.Configured() {
		return fmt.Errorf("%w: %w", ErrSyncNotAvailable, adapter.ErrNotConfigured)
	}
	id = strings.TrimSpace(id)
	if id == "" || password == "" {
		return ErrWrongSyncCredentials
	}

	snapshot, err := s.fetchRemote(ctx, id, password, ErrWrongSyncCredentials)
	if err != nil {
		return err
	}

	if _, err = s.settings.Update(ctx, func(st *models.Settings) {
		st.CloudSyncEnabled = true
		st.CloudSyncID = id
	}); err != nil {
		return err
	}
	s.mu.Lock()
	s.syncPassword = password
	s.mu.Unlock()
	s.roster.RestoreAll(snapshot, detailsCloudSync)

	s.logger.Info().Str("func", "Session.ConnectSync").Str("bin", id).Msg("connected to remote bin")
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Conectado com sucesso!"})
	return nil
}

// DisconnectSync returns persistence to local mode. The bin is left as is.
func (s *Session) DisconnectSync(ctx context.Context) error {
	if _, err := s.settings.Update(ctx, func(st *models.Settings) {
		st.CloudSyncEnabled = false
		st.CloudSyncID = ""
	}); err != nil {
		return err
	}
	s.mu.Lock()
	s.syncPassword = ""
	s.mu.Unlock()

	s.persistMu.Lock()
	s.persisted = 0
	s.persistMu.Unlock()
	s.debouncer.Trigger()

	s.notifier.Notify(models.Notice{Kind: models.NoticeInfo, Message: "Sincronização na nuvem desativada."})
	return nil
}

// ── passwords and settings ──────────────────────────────────────────────────

// ChangePassword replaces the panel password after checking the current one.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	stored, err := s.settings.Password(ctx)
	if err != nil {
		return err
	}
	if current != stored {
		return ErrWrongCurrentPassword
	}
	if err = s.settings.SetPassword(ctx, next); err != nil {
		return err
	}
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Senha do painel alterada com sucesso!"})
	return nil
}

// SetRecoveryKey stores the key that allows a password reset. An empty key
// removes it.
func (s *Session) SetRecoveryKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)

	current, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if key != "" && key == current.RecoveryKey {
		return ErrSameRecoveryKey
	}

	if _, err = s.settings.Update(ctx, func(st *models.Settings) { st.RecoveryKey = key }); err != nil {
		return err
	}
	if key == "" {
		s.notifier.Notify(models.Notice{Kind: models.NoticeInfo, Message: "Chave de recuperação removida."})
		return nil
	}
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Chave de recuperação salva com sucesso!"})
	return nil
}

// ResetPassword sets a new panel password when key matches the stored
// recovery key.
func (s *Session) ResetPassword(ctx context.Context, key, next string) error {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if settings.RecoveryKey == "" {
		return ErrNoRecoveryKey
	}
	if key == "" || key != settings.RecoveryKey {
		return ErrWrongRecoveryKey
	}
	if err = s.settings.SetPassword(ctx, next); err != nil {
		return err
	}
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Senha redefinida com sucesso!"})
	return nil
}

// SetAppearance changes the panel title and logo. An empty title restores
// the default one.
func (s *Session) SetAppearance(ctx context.Context, title, logoURL string) (models.Settings, error) {
	return s.settings.Update(ctx, func(st *models.Settings) {
		st.PanelTitle = strings.TrimSpace(title)
		st.LogoURL = strings.TrimSpace(logoURL)
	})
}

// SetAutoBackup switches local persistence on or off.
func (s *Session) SetAutoBackup(ctx context.Context, enabled bool) (models.Settings, error) {
	settings, err := s.settings.Update(ctx, func(st *models.Settings) { st.AutoBackupEnabled = enabled })
	if err != nil {
		return models.Settings{}, err
	}
	if enabled {
		s.persistMu.Lock()
		s.persisted = 0
		s.persistMu.Unlock()
		s.debouncer.Trigger()
	}
	return settings, nil
}

// ResetApp wipes every stored key, logs the operator out and starts over
// from the demo roster.
func (s *Session) ResetApp(ctx context.Context) error {
	s.mu.Lock()
	s.loggedIn = false
	s.syncPassword = ""
	s.initial = nil
	s.mu.Unlock()

	for _, key := range []string{DataKey, PasswordKey, SettingsKey} {
		if err := s.storage.Remove(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	if err := s.backups.RemoveAll(ctx); err != nil {
		return fmt.Errorf("reset daily backups: %w", err)
	}

	s.roster.Load(SeedSnapshot(utils.Today(s.clock)))
	s.logger.Warn().Str("func", "Session.ResetApp").Msg("panel data wiped")
	return nil
}

// ── backups and restores ────────────────────────────────────────────────────

// BackupFileName is the suggested name of an exported backup file.
func (s *Session) BackupFileName() string {
	return fmt.Sprintf("dados_clientes_%s.json", utils.Today(s.clock))
}

// ExportBackup writes the current snapshot as indented JSON.
func (s *Session) ExportBackup(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.roster.Snapshot()); err != nil {
		return fmt.Errorf("export backup: %w", err)
	}
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Arquivo de dados exportado com sucesso."})
	return nil
}

// ImportBackup replaces the roster with an exported backup file. Files
// without clients and history arrays are rejected with [ErrValidation]
// and change nothing.
func (s *Session) ImportBackup(r io.Reader) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}
	snapshot, err := DecodeSnapshot(body)
	if err != nil {
		return err
	}
	s.roster.RestoreAll(snapshot, detailsImport)
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Dados importados com sucesso!"})
	return nil
}

// RestoreSession brings the roster back to its state at login.
func (s *Session) RestoreSession() error {
	s.mu.Lock()
	initial := s.initial
	s.mu.Unlock()
	if initial == nil {
		return ErrNoSessionSnapshot
	}

	s.roster.RestoreAll(*initial, detailsSessionReset)
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Sessão restaurada com sucesso!"})
	return nil
}

// DailyBackups lists the restorable daily slots, newest first.
func (s *Session) DailyBackups(ctx context.Context) ([]models.Date, error) {
	return s.backups.List(ctx)
}

// RestoreDailyBackup replaces the roster with the slot of date.
func (s *Session) RestoreDailyBackup(ctx context.Context, date models.Date) error {
	snapshot, err := s.backups.Load(ctx, date)
	if err != nil {
		return err
	}
	s.roster.RestoreAll(snapshot, fmt.Sprintf(detailsDailyBackupFn, date.BR()))
	s.notifier.Notify(models.Notice{Kind: models.NoticeSuccess, Message: "Backup restaurado com sucesso!"})
	return nil
}
