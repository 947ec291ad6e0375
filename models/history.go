package models

import "time"

// HistoryAction tags a history entry with the kind of roster change.
type HistoryAction string

const (
	ActionCreated HistoryAction = "Criado"
	ActionUpdated HistoryAction = "Atualizado"
	ActionDeleted HistoryAction = "Excluído"
	ActionRenewed HistoryAction = "Renovado"
	ActionSystem  HistoryAction = "Sistema"
)

// HistoryEntry is one line of the append-only audit log.
type HistoryEntry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	ClientName string        `json:"clientName"`
	Action     HistoryAction `json:"action"`
	Details    string        `json:"details"`
}
