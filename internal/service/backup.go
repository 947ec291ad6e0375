// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/store"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

// MaxBackupDays is how many days a daily backup slot is kept.
const MaxBackupDays = 3

// BackupKey is the storage key of the daily slot for date.
func BackupKey(date models.Date) string {
	return DailyBackupPrefix + date.String()
}

// BackupManager keeps a rolling window of daily copies of the live local
// data. It only touches local storage.
type BackupManager struct {
	storage store.LocalStorage
	clock   utils.Clock
	logger  *logger.Logger
}

// NewBackupManager returns a BackupManager over storage.
func NewBackupManager(storage store.LocalStorage, clock utils.Clock, logger *logger.Logger) *BackupManager {
	return &BackupManager{storage: storage, clock: clock, logger: logger}
}

// Rotate copies the live data into today's slot when that slot is still
// empty, then removes slots older than [MaxBackupDays].
func (b *BackupManager) Rotate(ctx context.Context) error {
	today := utils.Today(b.clock)
	todayKey := BackupKey(today)

	_, exists, err := b.storage.Get(ctx, todayKey)
	if err != nil {
		return fmt.Errorf("read backup slot: %w", err)
	}
	if !exists {
		live, ok, err := b.storage.Get(ctx, DataKey)
		if err != nil {
			return fmt.Errorf("read live data: %w", err)
		}
		if ok {
			if err = b.storage.Set(ctx, todayKey, live); err != nil {
				return fmt.Errorf("write backup slot: %w", err)
			}
			b.logger.Debug().Str("func", "BackupManager.Rotate").Str("slot", todayKey).Msg("daily backup created")
		}
	}

	keys, err := b.storage.Keys(ctx, DailyBackupPrefix)
	if err != nil {
		return fmt.Errorf("list backup slots: %w", err)
	}
	for _, key := range keys {
		date, ok := slotDate(key)
		if !ok || models.DaysBetween(date, today) <= MaxBackupDays {
			continue
		}
		if err = b.storage.Remove(ctx, key); err != nil {
			return fmt.Errorf("prune backup slot %s: %w", key, err)
		}
		b.logger.Debug().Str("func", "BackupManager.Rotate").Str("slot", key).Msg("daily backup pruned")
	}
	return nil
}

// List returns the dates of the kept slots, newest first, without today.
func (b *BackupManager) List(ctx context.Context) ([]models.Date, error) {
	today := utils.Today(b.clock)

	keys, err := b.storage.Keys(ctx, DailyBackupPrefix)
	if err != nil {
		return nil, fmt.Errorf("list backup slots: %w", err)
	}

	dates := make([]models.Date, 0, len(keys))
	for _, key := range keys {
		date, ok := slotDate(key)
		if !ok || date == today || models.DaysBetween(date, today) > MaxBackupDays {
			continue
		}
		dates = append(dates, date)
	}
	slices.SortFunc(dates, func(a, c models.Date) int { return c.Compare(a) })
	return dates, nil
}

// Load reads the slot of date.
func (b *BackupManager) Load(ctx context.Context, date models.Date) (models.Snapshot, error) {
	raw, ok, err := b.storage.Get(ctx, BackupKey(date))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("read backup slot: %w", err)
	}
	if !ok {
		return models.Snapshot{}, fmt.Errorf("%s: %w", date, ErrBackupNotFound)
	}

	snapshot, err := DecodeSnapshot([]byte(raw))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidBackupSlot, err)
	}
	return snapshot, nil
}

// RemoveAll deletes every slot.
func (b *BackupManager) RemoveAll(ctx context.Context) error {
	keys, err := b.storage.Keys(ctx, DailyBackupPrefix)
	if err != nil {
		return fmt.Errorf("list backup slots: %w", err)
	}
	var errs []error
	for _, key := range keys {
		errs = append(errs, b.storage.Remove(ctx, key))
	}
	return errors.Join(errs...)
}

func slotDate(key string) (models.Date, bool) {
	suffix, ok := strings.CutPrefix(key, DailyBackupPrefix)
	if !ok {
		return models.Date{}, false
	}
	date, err := models.ParseDate(suffix)
	if err != nil {
		return models.Date{}, false
	}
	return date, true
}

// DecodeSnapshot parses a stored or imported snapshot. Both clients and
// history must be present as arrays.
func DecodeSnapshot(body []byte) (models.Snapshot, error) {
	var doc struct {
		Clients json.RawMessage `json:"clients"`
		History json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: documento não é um JSON válido", ErrValidation)
	}
	if !isJSONArray(doc.Clients) || !isJSONArray(doc.History) {
		return models.Snapshot{}, fmt.Errorf("%w: clients e history devem ser listas", ErrValidation)
	}

	snapshot := models.Snapshot{}
	if err := json.Unmarshal(doc.Clients, &snapshot.Clients); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: clients: %w", ErrValidation, err)
	}
	if err := json.Unmarshal(doc.History, &snapshot.History); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: history: %w", ErrValidation, err)
	}
	return snapshot.Clone(), nil
}

func isJSONArray(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}
