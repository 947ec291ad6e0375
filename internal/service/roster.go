// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/internal/validators"
	"github.com/MKhiriev/go-client-panel/models"
)

// DefaultRenewalDays is used by [RosterStore.Renew] when no positive number of
// days is given.
const DefaultRenewalDays = 30

// SystemClientName is the clientName of history entries written by the
// panel itself.
const SystemClientName = "Sistema"

// DefaultRestoreDetails is the details text of a restore entry when the
// caller does not provide one.
const DefaultRestoreDetails = "Backup restaurado com sucesso."

// IDGenerator produces fresh identifiers for clients and history entries.
type IDGenerator interface {
	Generate() string
}

// RosterStore owns the client list and the activity history.
//
// Every mutation runs under one mutex and replaces the slices instead of
// writing into them, so a [models.Snapshot] handed to a reader stays
// complete and unchanged. Subscribers are called after the lock is released.
type RosterStore struct {
	mu      sync.RWMutex
	clients []models.Client
	history []models.HistoryEntry
	version uint64

	subsMu  sync.Mutex
	subs    map[int]func(version uint64)
	nextSub int

	clock utils.Clock
	ids   IDGenerator
}

// NewRosterStore returns an empty store.
func NewRosterStore(clock utils.Clock, ids IDGenerator) *RosterStore {
	return &RosterStore{
		clients: []models.Client{},
		history: []models.HistoryEntry{},
		subs:    make(map[int]func(uint64)),
		clock:   clock,
		ids:     ids,
	}
}

// Snapshot returns the current clients and history.
func (r *RosterStore) Snapshot() models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.Snapshot{Clients: r.clients, History: r.history}
}

// Current returns the snapshot together with the version it belongs to.
func (r *RosterStore) Current() (models.Snapshot, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.Snapshot{Clients: r.clients, History: r.history}, r.version
}

// Version increases by one with every accepted mutation.
func (r *RosterStore) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

// Client returns the client with the given id.
func (r *RosterStore) Client(id string) (models.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Client{}, false
	}
	return r.clients[i], true
}

// Subscribe registers fn to be called with the new version after every
// mutation. The returned func removes the subscription.
func (r *RosterStore) Subscribe(fn func(version uint64)) (unsubscribe func()) {
	r.subsMu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subsMu.Lock()
			delete(r.subs, id)
			r.subsMu.Unlock()
		})
	}
}

// Create validates input, assigns a fresh id and appends the client.
func (r *RosterStore) Create(input models.ClientInput) (models.Client, error) {
	if err := validateClient(input); err != nil {
		return models.Client{}, err
	}

	r.mu.Lock()
	id := r.ids.Generate()
	for r.indexOf(id) >= 0 {
		id = r.ids.Generate()
	}
	client := input.WithID(id)

	r.clients = append(slices.Clip(r.clients), client)
	r.logLocked(client.Nome, models.ActionCreated, fmt.Sprintf("Cliente %s foi adicionado.", client.Nome))
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
	return client, nil
}

// Update replaces the client with the same id.
func (r *RosterStore) Update(client models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}

	r.mu.Lock()
	i := r.indexOf(client.ID)
	if i < 0 {
		r.mu.Unlock()
		return fmt.Errorf("update %q: %w", client.ID, ErrClientNotFound)
	}

	r.clients = replaced(r.clients, i, client)
	r.logLocked(client.Nome, models.ActionUpdated, fmt.Sprintf("Dados de %s foram alterados.", client.Nome))
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
	return nil
}

// Delete removes the client with the given id. Unknown ids are ignored and
// reported with false.
func (r *RosterStore) Delete(id string) bool {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return false
	}

	removed := r.clients[i]
	rest := make([]models.Client, 0, len(r.clients)-1)
	rest = append(rest, r.clients[:i]...)
	r.clients = append(rest, r.clients[i+1:]...)
	r.logLocked(removed.Nome, models.ActionDeleted, fmt.Sprintf("Cliente %s foi removido.", removed.Nome))
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
	return true
}

// Renew extends the subscription by days, counted from today when the client
// is already overdue and from the current due date otherwise.
func (r *RosterStore) Renew(id string, days int) (models.Client, error) {
	if days <= 0 {
		days = DefaultRenewalDays
	}
	today := utils.Today(r.clock)

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return models.Client{}, fmt.Errorf("renew %q: %w", id, ErrClientNotFound)
	}

	client := r.clients[i]
	client.Vencimento = models.MaxDate(client.Vencimento, today).AddDays(days)

	r.clients = replaced(r.clients, i, client)
	r.logLocked(client.Nome, models.ActionRenewed,
		fmt.Sprintf("Assinatura renovada por %d dias. Novo vencimento: %s.", days, client.Vencimento.BR()))
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
	return client, nil
}

// RestoreAll replaces the whole roster and history with snapshot and records
// one system entry on top. Empty details fall back to [DefaultRestoreDetails].
func (r *RosterStore) RestoreAll(snapshot models.Snapshot, details string) {
	if details == "" {
		details = DefaultRestoreDetails
	}
	restored := snapshot.Clone()

	r.mu.Lock()
	r.clients = restored.Clients
	r.history = restored.History
	r.logLocked(SystemClientName, models.ActionSystem, details)
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
}

// Load replaces the roster without writing a history entry. It is used when
// the roster is read back from storage or reset.
func (r *RosterStore) Load(snapshot models.Snapshot) {
	loaded := snapshot.Clone()

	r.mu.Lock()
	r.clients = loaded.Clients
	r.history = loaded.History
	version := r.bumpLocked()
	r.mu.Unlock()

	r.notify(version)
}

func (r *RosterStore) indexOf(id string) int {
	return slices.IndexFunc(r.clients, func(c models.Client) bool { return c.ID == id })
}

// logLocked prepends a history entry. The caller holds r.mu.
func (r *RosterStore) logLocked(clientName string, action models.HistoryAction, details string) {
	entry := models.HistoryEntry{
		ID:         r.ids.Generate(),
		Timestamp:  r.clock.Now(),
		ClientName: clientName,
		Action:     action,
		Details:    details,
	}
	r.history = slices.Concat([]models.HistoryEntry{entry}, r.history)
}

func (r *RosterStore) bumpLocked() uint64 {
	r.version++
	return r.version
}

func (r *RosterStore) notify(version uint64) {
	r.subsMu.Lock()
	keys := make([]int, 0, len(r.subs))
	for k := range r.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fns := make([]func(uint64), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, r.subs[k])
	}
	r.subsMu.Unlock()

	for _, fn := range fns {
		fn(version)
	}
}

func replaced(clients []models.Client, i int, client models.Client) []models.Client {
	out := slices.Clone(clients)
	out[i] = client
	return out
}

var clientValidator = validators.NewClientValidator()

// validateClient reports every missing required field at once.
func validateClient(client any) error {
	if err := clientValidator.Validate(context.Background(), client); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
