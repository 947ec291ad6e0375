package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrInvalidBin is returned for bin documents whose data field is missing,
// empty or not a string.
var ErrInvalidBin = errors.New("Formato de dados inválido")

// Bin is the remote wire form of one stored envelope.
type Bin struct {
	Data string `json:"data"`
}

// DecodeBin parses a {"data": "<string>"} document. Any other shape is
// [ErrInvalidBin].
func DecodeBin(body []byte) (Bin, error) {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Bin{}, ErrInvalidBin
	}

	var bin Bin
	if err := json.Unmarshal(raw.Data, &bin.Data); err != nil || bin.Data == "" {
		return Bin{}, ErrInvalidBin
	}
	return bin, nil
}

// BinRecord is a bin as held by the bin server storage.
type BinRecord struct {
	ID        string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
