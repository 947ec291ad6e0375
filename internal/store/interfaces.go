package store

import (
	"context"

	"github.com/MKhiriev/go-client-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BinRepository persists opaque bins on the bin server.
type BinRepository interface {
	// Create stores a new bin and fails with [ErrBinAlreadyExists] when the
	// id is taken.
	Create(ctx context.Context, bin models.BinRecord) error
	// Get returns the bin or [ErrBinNotFound].
	Get(ctx context.Context, id string) (models.BinRecord, error)
	// Upsert overwrites the bin, creating it when absent.
	Upsert(ctx context.Context, bin models.BinRecord) error
}

// LocalStorage is the panel's durable key-value storage. Values are opaque
// strings, usually JSON documents.
type LocalStorage interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Absent keys are not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists the stored keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
