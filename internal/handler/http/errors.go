// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-client-panel/internal/app"
)

// Request-level errors raised before a bin reaches the service layer.
var (
	// ErrBodyTooLarge is returned when the request body exceeds
	// [config.Server.MaxBodyBytes].
	ErrBodyTooLarge = errors.New(app.MsgBodyTooLarge)

	// ErrUnreadableBody is returned when the body cannot be read, for example
	// because of a broken gzip stream.
	ErrUnreadableBody = errors.New(app.MsgUnreadableBody)

	// ErrTooManyRequests is returned when the client IP ran out of rate
	// limit tokens.
	ErrTooManyRequests = errors.New(app.MsgTooManyRequests)
)
