// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the unit of persistence and of remote synchronization.
// History is ordered newest first.
type Snapshot struct {
	Clients []Client       `json:"clients"`
	History []HistoryEntry `json:"history"`
}

// Clone returns a deep copy whose slices can be handed out freely.
func (s Snapshot) Clone() Snapshot {
	clients := make([]Client, len(s.Clients))
	copy(clients, s.Clients)
	history := make([]HistoryEntry, len(s.History))
	copy(history, s.History)
	return Snapshot{Clients: clients, History: history}
}
