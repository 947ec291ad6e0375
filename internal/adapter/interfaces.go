// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the panel: the
// remote bin stores that hold encrypted roster snapshots and the text
// generation API behind the assistant.
//
// [BinClient] decouples the session layer from the backend. The package
// ships an HTTP implementation talking to the bin server, an S3/MinIO
// implementation and a disabled client used when neither is configured.
// Backend failures are mapped onto the sentinel errors of errors.go so that
// callers can use [errors.Is] whatever the transport.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BinClient stores opaque text blobs under ids in a remote key-value store.
// Writes are whole-document overwrites.
type BinClient interface {
	// Configured reports whether a backend is available. A client that is
	// not configured fails every call with [ErrNotConfigured].
	Configured() bool

	// CreateBin stores blob under a freshly generated id and returns the id.
	CreateBin(ctx context.Context, blob string) (string, error)

	// GetBin returns the blob stored under id, [ErrNotFound] when there is
	// none, or [ErrInvalidFormat] when the stored document is malformed.
	GetBin(ctx context.Context, id string) (string, error)

	// UpdateBin overwrites the blob stored under id.
	UpdateBin(ctx context.Context, id, blob string) error
}

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
