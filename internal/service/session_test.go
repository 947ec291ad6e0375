package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-client-panel/internal/adapter"
	"github.com/MKhiriev/go-client-panel/internal/crypto"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/mock"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

const (
	testToday   = "2024-01-10"
	testBinID   = "lr5x9k2abcdefghij"
	syncSecret  = "segredo-da-nuvem"
	panelSecret = DefaultPanelPassword
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (n *recordingNotifier) Notify(notice models.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) last() models.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return models.Notice{}
	}
	return n.notices[len(n.notices)-1]
}

type sessionHarness struct {
	session  *Session
	roster   *RosterStore
	settings *SettingsStore
	storage  store.LocalStorage
	bins     *mock.MockBinClient
	envelope crypto.Envelope
	notes    *recordingNotifier
}

// newSessionHarness собирает Session поверх in-memory хранилища и мока
// BinClient. configured управляет тем, доступна ли удалённая синхронизация.
func newSessionHarness(t *testing.T, ctrl *gomock.Controller, configured bool) *sessionHarness {
	t.Helper()

	clock := utils.ClockAt(models.MustParseDate(testToday))
	storage := store.NewMemoryLocalStorage()
	bins := mock.NewMockBinClient(ctrl)
	bins.EXPECT().Configured().Return(configured).AnyTimes()

	h := &sessionHarness{
		roster:   NewRosterStore(clock, &seqIDs{}),
		settings: NewSettingsStore(storage, logger.Nop()),
		storage:  storage,
		bins:     bins,
		envelope: crypto.NewEnvelope(crypto.MinIterations),
		notes:    &recordingNotifier{},
	}
	h.session = NewSession(SessionDeps{
		Roster:        h.roster,
		Settings:      h.settings,
		Backups:       NewBackupManager(storage, clock, logger.Nop()),
		Storage:       storage,
		Bins:          bins,
		Envelope:      h.envelope,
		Notifier:      h.notes,
		Clock:         clock,
		Logger:        logger.Nop(),
		PersistWindow: 20 * time.Millisecond,
	})
	t.Cleanup(h.session.Close)
	return h
}

func (h *sessionHarness) enableSyncSettings(t *testing.T) {
	t.Helper()
	_, err := h.settings.Update(context.Background(), func(st *models.Settings) {
		st.CloudSyncEnabled = true
		st.CloudSyncID = testBinID
	})
	require.NoError(t, err)
}

func (h *sessionHarness) storedSnapshot(t *testing.T) (models.Snapshot, bool) {
	t.Helper()
	raw, ok, err := h.storage.Get(context.Background(), DataKey)
	require.NoError(t, err)
	if !ok {
		return models.Snapshot{}, false
	}
	snap, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	return snap, true
}

func (h *sessionHarness) encrypt(t *testing.T, snap models.Snapshot, password string) string {
	t.Helper()
	blob, err := h.envelope.Encrypt(snap, password)
	require.NoError(t, err)
	return blob
}

func remoteSnapshot() models.Snapshot {
	return models.Snapshot{
		Clients: []models.Client{{ID: "r1", Nome: "Remoto", Login: "remoto", Servidor: "Servidor Z", Vencimento: models.MustParseDate("2024-03-01")}},
		History: []models.HistoryEntry{},
	}
}

// ── LoadRoster ──────────────────────────────────────────────────────────────

func TestSession_LoadRoster_SeedsFirstRun(t *testing.T) {
	h := newSessionHarness(t, gomock.NewController(t), false)

	require.NoError(t, h.session.LoadRoster(context.Background()))

	snap := h.roster.Snapshot()
	require.Len(t, snap.Clients, 5)
	assert.Empty(t, snap.History)
	assert.Equal(t, models.MustParseDate("2024-02-09"), snap.Clients[0].Vencimento)
	assert.Equal(t, models.MustParseDate("2024-01-05"), snap.Clients[1].Vencimento)
}

func TestSession_LoadRoster_ReadsStoredData(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.storage.Set(ctx, DataKey,
		`{"clients":[{"id":"x","nome":"Guardado","login":"g","servidor":"S","vencimento":"2024-05-05"}],"history":[]}`))

	require.NoError(t, h.session.LoadRoster(ctx))

	snap := h.roster.Snapshot()
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Guardado", snap.Clients[0].Nome)
}

func TestSession_LoadRoster_CorruptedDataFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.storage.Set(ctx, DataKey, `{"clients":[]}`))

	require.NoError(t, h.session.LoadRoster(ctx))
	assert.Len(t, h.roster.Snapshot().Clients, 5)
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestSession_LocalLogin(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)

	err := h.session.Login(ctx, "errada")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, h.session.LoggedIn())

	require.NoError(t, h.session.Login(ctx, panelSecret))
	assert.True(t, h.session.LoggedIn())
	assert.False(t, h.session.SyncActive(ctx))
}

func TestSession_LocalLogin_CorruptedSettingsDoNotBlock(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	require.NoError(t, h.storage.Set(ctx, SettingsKey, `{"cloudSyncEnabled":"yes","panelTitle":`))

	require.NoError(t, h.session.Login(ctx, panelSecret))
}

func TestSession_LoginCreatesDailyBackup(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.storage.Set(ctx, DataKey, liveData))

	require.NoError(t, h.session.Login(ctx, panelSecret))

	got, ok, err := h.storage.Get(ctx, BackupKey(models.MustParseDate(testToday)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, liveData, got)
}

func TestSession_RemoteLogin_Success(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	h.enableSyncSettings(t)
	mustCreate(t, h.roster, "Local", "2024-02-01")

	h.bins.EXPECT().GetBin(ctx, testBinID).Return(h.encrypt(t, remoteSnapshot(), syncSecret), nil)

	require.True(t, h.session.RemoteLogin(ctx))
	require.NoError(t, h.session.Login(ctx, syncSecret))

	snap := h.roster.Snapshot()
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Remoto", snap.Clients[0].Nome)
	require.Len(t, snap.History, 1)
	assert.Equal(t, models.ActionSystem, snap.History[0].Action)
	assert.Equal(t, "Dados sincronizados da nuvem.", snap.History[0].Details)

	assert.True(t, h.session.LoggedIn())
	assert.True(t, h.session.SyncActive(ctx))
	assert.Equal(t, models.Notice{Kind: models.NoticeSuccess, Message: "Conectado e sincronizado com a nuvem!"}, h.notes.last())
}

func TestSession_RemoteLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	h.enableSyncSettings(t)
	local := mustCreate(t, h.roster, "Local", "2024-02-01")
	version := h.roster.Version()

	h.bins.EXPECT().GetBin(ctx, testBinID).Return(h.encrypt(t, remoteSnapshot(), syncSecret), nil)

	err := h.session.Login(ctx, panelSecret)

	require.ErrorIs(t, err, ErrWrongSyncPassword)
	assert.False(t, h.session.LoggedIn())
	assert.Equal(t, version, h.roster.Version())
	assert.Equal(t, []models.Client{local}, h.roster.Snapshot().Clients)
}

func TestSession_RemoteLogin_RemoteErrors(t *testing.T) {
	for _, remoteErr := range []error{adapter.ErrRemoteUnavailable, adapter.ErrNotFound, adapter.ErrInvalidFormat} {
		t.Run(remoteErr.Error(), func(t *testing.T) {
			ctx := context.Background()
			h := newSessionHarness(t, gomock.NewController(t), true)
			h.enableSyncSettings(t)

			h.bins.EXPECT().GetBin(ctx, testBinID).Return("", remoteErr)

			err := h.session.Login(ctx, syncSecret)
			require.ErrorIs(t, err, remoteErr)
			assert.False(t, h.session.LoggedIn())
		})
	}
}

func TestSession_SyncSettingsWithoutBackendUseLocalLogin(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	h.enableSyncSettings(t)

	assert.False(t, h.session.RemoteLogin(ctx))
	require.NoError(t, h.session.Login(ctx, panelSecret))
}

func TestSession_LogoutFlushesPendingChanges(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	mustCreate(t, h.roster, "Ana", "2024-02-01")

	h.session.Logout(ctx)

	assert.False(t, h.session.LoggedIn())
	snap, ok := h.storedSnapshot(t)
	require.True(t, ok)
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Ana", snap.Clients[0].Nome)
}

// ── persistence ─────────────────────────────────────────────────────────────

func TestSession_PersistLocal(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	mustCreate(t, h.roster, "Ana", "2024-02-01")

	h.session.persist(ctx)

	snap, ok := h.storedSnapshot(t)
	require.True(t, ok)
	assert.Equal(t, h.roster.Snapshot().Clients, snap.Clients)
	assert.Len(t, snap.History, 1)

	// the first local write of the day also fills today's slot
	_, ok, err := h.storage.Get(ctx, BackupKey(models.MustParseDate(testToday)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSession_PersistSkipsWrittenVersion(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	mustCreate(t, h.roster, "Ana", "2024-02-01")
	h.session.persist(ctx)

	require.NoError(t, h.storage.Set(ctx, DataKey, "sentinel"))
	h.session.persist(ctx)

	raw, _, err := h.storage.Get(ctx, DataKey)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", raw)
}

func TestSession_PersistRespectsAutoBackup(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	_, err := h.session.SetAutoBackup(ctx, false)
	require.NoError(t, err)
	mustCreate(t, h.roster, "Ana", "2024-02-01")

	h.session.persist(ctx)

	_, ok := h.storedSnapshot(t)
	assert.False(t, ok)
}

func TestSession_PersistNothingBeforeLogin(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	mustCreate(t, h.roster, "Ana", "2024-02-01")

	h.session.persist(ctx)

	_, ok := h.storedSnapshot(t)
	assert.False(t, ok)
}

func TestSession_PersistRemote(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	h.enableSyncSettings(t)
	h.bins.EXPECT().GetBin(ctx, testBinID).Return(h.encrypt(t, remoteSnapshot(), syncSecret), nil)
	require.NoError(t, h.session.Login(ctx, syncSecret))
	mustCreate(t, h.roster, "Nova", "2024-02-01")

	h.bins.EXPECT().UpdateBin(ctx, testBinID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, blob string) error {
			var got models.Snapshot
			require.True(t, h.envelope.DecryptInto(blob, syncSecret, &got))
			assert.Equal(t, h.roster.Snapshot().Clients, got.Clients)
			return nil
		})

	h.session.persist(ctx)

	// remote mode never writes the live local key
	_, ok := h.storedSnapshot(t)
	assert.False(t, ok)
}

func TestSession_PersistRemoteFailureIsReportedOnce(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	h.enableSyncSettings(t)
	h.bins.EXPECT().GetBin(ctx, testBinID).Return(h.encrypt(t, remoteSnapshot(), syncSecret), nil)
	require.NoError(t, h.session.Login(ctx, syncSecret))
	mustCreate(t, h.roster, "Nova", "2024-02-01")
	before := h.roster.Snapshot()

	gomock.InOrder(
		h.bins.EXPECT().UpdateBin(ctx, testBinID, gomock.Any()).Return(adapter.ErrRemoteUnavailable),
		h.bins.EXPECT().UpdateBin(ctx, testBinID, gomock.Any()).Return(nil),
	)

	h.session.persist(ctx)

	last := h.notes.last()
	assert.Equal(t, models.NoticeError, last.Kind)
	assert.True(t, strings.HasPrefix(last.Message, "Sinc. automática falhou: "), last.Message)
	assert.Equal(t, before, h.roster.Snapshot())

	// the unsent version goes out with the next write
	h.session.persist(ctx)
}

func TestSession_DebouncedPersistence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.session.Worker().Run(ctx)
	}()

	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		mustCreate(t, h.roster, name, "2024-02-01")
	}

	assert.Eventually(t, func() bool {
		snap, ok := h.storedSnapshot(t)
		return ok && len(snap.Clients) == 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

// ── cloud sync ──────────────────────────────────────────────────────────────

func TestSession_EnableSync(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)

	_, err := h.session.EnableSync(ctx, syncSecret)
	require.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, h.session.Login(ctx, panelSecret))
	mustCreate(t, h.roster, "Ana", "2024-02-01")

	_, err = h.session.EnableSync(ctx, "")
	require.ErrorIs(t, err, ErrEmptyPassword)

	h.bins.EXPECT().CreateBin(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, blob string) (string, error) {
		var got models.Snapshot
		require.True(t, h.envelope.DecryptInto(blob, syncSecret, &got))
		assert.Len(t, got.Clients, 1)
		return testBinID, nil
	})

	id, err := h.session.EnableSync(ctx, syncSecret)

	require.NoError(t, err)
	assert.Equal(t, testBinID, id)
	settings, err := h.session.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.CloudSyncEnabled)
	assert.Equal(t, testBinID, settings.CloudSyncID)
	assert.True(t, h.session.SyncActive(ctx))

	// the snapshot just uploaded is not written again
	h.session.persist(ctx)
}

func TestSession_EnableSync_NotConfigured(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))

	_, err := h.session.EnableSync(ctx, syncSecret)

	require.ErrorIs(t, err, ErrSyncNotAvailable)
	require.ErrorIs(t, err, adapter.ErrNotConfigured)
}

func TestSession_EnableSync_CreateFails(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	h.bins.EXPECT().CreateBin(ctx, gomock.Any()).Return("", adapter.ErrConflict)

	_, err := h.session.EnableSync(ctx, syncSecret)

	require.ErrorIs(t, err, adapter.ErrConflict)
	settings, err := h.session.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.CloudSyncEnabled)
}

func TestSession_ConnectSync(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	blob := h.encrypt(t, remoteSnapshot(), syncSecret)

	h.bins.EXPECT().GetBin(ctx, testBinID).Return(blob, nil).Times(2)

	err := h.session.ConnectSync(ctx, " "+testBinID+" ", "outra")
	require.ErrorIs(t, err, ErrWrongSyncCredentials)
	settings, _ := h.session.Settings(ctx)
	assert.False(t, settings.CloudSyncEnabled)

	require.NoError(t, h.session.ConnectSync(ctx, testBinID, syncSecret))

	settings, _ = h.session.Settings(ctx)
	assert.Equal(t, testBinID, settings.CloudSyncID)
	assert.True(t, h.session.SyncActive(ctx))
	assert.Equal(t, "Remoto", h.roster.Snapshot().Clients[0].Nome)
	assert.Equal(t, "Conectado com sucesso!", h.notes.last().Message)
}

func TestSession_DisconnectSync(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), true)
	h.enableSyncSettings(t)
	h.bins.EXPECT().GetBin(ctx, testBinID).Return(h.encrypt(t, remoteSnapshot(), syncSecret), nil)
	require.NoError(t, h.session.Login(ctx, syncSecret))

	require.NoError(t, h.session.DisconnectSync(ctx))

	settings, err := h.session.Settings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.CloudSyncEnabled)
	assert.Empty(t, settings.CloudSyncID)
	assert.False(t, h.session.SyncActive(ctx))
	assert.Equal(t, models.Notice{Kind: models.NoticeInfo, Message: "Sincronização na nuvem desativada."}, h.notes.last())

	// back in local mode the roster goes to local storage
	h.session.persist(ctx)
	_, ok := h.storedSnapshot(t)
	assert.True(t, ok)
}

// ── passwords ───────────────────────────────────────────────────────────────

func TestSession_ChangePassword(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)

	assert.ErrorIs(t, h.session.ChangePassword(ctx, "errada", "nova"), ErrWrongCurrentPassword)
	assert.ErrorIs(t, h.session.ChangePassword(ctx, panelSecret, ""), ErrEmptyPassword)
	require.NoError(t, h.session.ChangePassword(ctx, panelSecret, "nova"))

	assert.ErrorIs(t, h.session.Login(ctx, panelSecret), ErrWrongPassword)
	require.NoError(t, h.session.Login(ctx, "nova"))
}

func TestSession_RecoveryKeyFlow(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)

	assert.ErrorIs(t, h.session.ResetPassword(ctx, "qualquer", "nova"), ErrNoRecoveryKey)

	require.NoError(t, h.session.SetRecoveryKey(ctx, "  minha-chave "))
	assert.Equal(t, "Chave de recuperação salva com sucesso!", h.notes.last().Message)
	assert.ErrorIs(t, h.session.SetRecoveryKey(ctx, "minha-chave"), ErrSameRecoveryKey)

	assert.ErrorIs(t, h.session.ResetPassword(ctx, "outra", "nova"), ErrWrongRecoveryKey)
	assert.ErrorIs(t, h.session.ResetPassword(ctx, "", "nova"), ErrWrongRecoveryKey)
	assert.ErrorIs(t, h.session.ResetPassword(ctx, "minha-chave", ""), ErrEmptyPassword)

	require.NoError(t, h.session.ResetPassword(ctx, "minha-chave", "nova"))
	require.NoError(t, h.session.Login(ctx, "nova"))

	require.NoError(t, h.session.SetRecoveryKey(ctx, ""))
	assert.Equal(t, models.Notice{Kind: models.NoticeInfo, Message: "Chave de recuperação removida."}, h.notes.last())
	settings, _ := h.session.Settings(ctx)
	assert.Empty(t, settings.RecoveryKey)
}

func TestSession_SetAppearance(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)

	settings, err := h.session.SetAppearance(ctx, " Minha Loja ", "https://x/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "Minha Loja", settings.PanelTitle)
	assert.Equal(t, "https://x/logo.png", settings.LogoURL)

	settings, err = h.session.SetAppearance(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPanelTitle, settings.PanelTitle)
}

func TestSession_ResetApp(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.ChangePassword(ctx, panelSecret, "nova"))
	require.NoError(t, h.session.Login(ctx, "nova"))
	mustCreate(t, h.roster, "Ana", "2024-02-01")
	h.session.persist(ctx)
	seedSlots(t, h.storage, "2024-01-09")

	require.NoError(t, h.session.ResetApp(ctx))

	assert.False(t, h.session.LoggedIn())
	for _, key := range []string{DataKey, PasswordKey, SettingsKey} {
		_, ok, err := h.storage.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	keys, err := h.storage.Keys(ctx, DailyBackupPrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Len(t, h.roster.Snapshot().Clients, 5)
	require.NoError(t, h.session.Login(ctx, DefaultPanelPassword))
}

// ── backups and restores ────────────────────────────────────────────────────

func TestSession_BackupFileName(t *testing.T) {
	h := newSessionHarness(t, gomock.NewController(t), false)
	assert.Equal(t, "dados_clientes_2024-01-10.json", h.session.BackupFileName())
}

func TestSession_ExportImportRoundTrip(t *testing.T) {
	src := newSessionHarness(t, gomock.NewController(t), false)
	mustCreate(t, src.roster, "Ana", "2024-02-01")
	mustCreate(t, src.roster, "Bruno", "2024-01-12")

	var buf bytes.Buffer
	require.NoError(t, src.session.ExportBackup(&buf))
	assert.Contains(t, buf.String(), "\n  \"clients\": [")
	assert.True(t, json.Valid(buf.Bytes()))

	dst := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, dst.session.ImportBackup(&buf))

	got := dst.roster.Snapshot()
	want := src.roster.Snapshot()
	assert.Equal(t, want.Clients, got.Clients)
	require.Len(t, got.History, len(want.History)+1)
	assert.Equal(t, "Dados importados de arquivo com sucesso!", got.History[0].Details)
	assert.Equal(t, "Dados importados com sucesso!", dst.notes.last().Message)
}

func TestSession_ImportRejectsFileWithoutHistory(t *testing.T) {
	h := newSessionHarness(t, gomock.NewController(t), false)
	mustCreate(t, h.roster, "Ana", "2024-02-01")
	before, version := h.roster.Current()

	err := h.session.ImportBackup(strings.NewReader(`{"clients":[]}`))

	require.ErrorIs(t, err, ErrValidation)
	after, afterVersion := h.roster.Current()
	assert.Equal(t, version, afterVersion)
	assert.Equal(t, before, after)
}

func TestSession_ImportReadError(t *testing.T) {
	h := newSessionHarness(t, gomock.NewController(t), false)
	boom := errors.New("read failed")

	err := h.session.ImportBackup(errReader{boom})
	assert.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestSession_RestoreSession(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	assert.ErrorIs(t, h.session.RestoreSession(), ErrNoSessionSnapshot)

	mustCreate(t, h.roster, "Ana", "2024-02-01")
	require.NoError(t, h.session.Login(ctx, panelSecret))
	initial := h.roster.Snapshot()

	mustCreate(t, h.roster, "Bruno", "2024-02-01")
	require.NoError(t, h.session.RestoreSession())

	got := h.roster.Snapshot()
	assert.Equal(t, initial.Clients, got.Clients)
	assert.Equal(t, "Sessão restaurada para o estado de início.", got.History[0].Details)
	assert.Equal(t, initial.History, got.History[1:])

	h.session.Logout(ctx)
	assert.ErrorIs(t, h.session.RestoreSession(), ErrNoSessionSnapshot)
}

func TestSession_DailyBackups(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.storage.Set(ctx, BackupKey(models.MustParseDate("2024-01-09")),
		`{"clients":[{"id":"b1","nome":"Do Backup","login":"b","servidor":"S","vencimento":"2024-01-20"}],"history":[]}`))
	seedSlots(t, h.storage, "2024-01-08")

	dates, err := h.session.DailyBackups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Date{models.MustParseDate("2024-01-09"), models.MustParseDate("2024-01-08")}, dates)

	require.NoError(t, h.session.RestoreDailyBackup(ctx, dates[0]))

	snap := h.roster.Snapshot()
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Do Backup", snap.Clients[0].Nome)
	assert.Equal(t, "Restaurado do backup de 09/01/2024.", snap.History[0].Details)

	assert.ErrorIs(t, h.session.RestoreDailyBackup(ctx, models.MustParseDate("2024-01-01")), ErrBackupNotFound)
}

// ── end to end ──────────────────────────────────────────────────────────────

func TestSession_CreateThenRenewBecomesActive(t *testing.T) {
	ctx := context.Background()
	h := newSessionHarness(t, gomock.NewController(t), false)
	require.NoError(t, h.session.Login(ctx, panelSecret))
	today := models.MustParseDate(testToday)
	projector := NewProjector()

	c := mustCreate(t, h.roster, "Ana", today.AddDays(3).String())
	p := projector.Project(c, today)
	assert.Equal(t, models.StatusExpiringSoon, p.Status)
	require.NotNil(t, p.DiasRestantes)
	assert.Equal(t, 3, *p.DiasRestantes)

	renewed, err := h.roster.Renew(c.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, projector.Project(renewed, today).Status)

	h.session.persist(ctx)
	snap, ok := h.storedSnapshot(t)
	require.True(t, ok)
	assert.Equal(t, today.AddDays(33), snap.Clients[0].Vencimento)
}
