// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bin server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of a request.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError replaces the details of every 5xx answer.
	MsgInternalServerError = "internal server error"

	// MsgBodyTooLarge is returned when a bin document exceeds the configured
	// body limit.
	MsgBodyTooLarge = "request body too large"

	// MsgUnreadableBody is returned when the request body cannot be read,
	// for example because of a broken gzip stream.
	MsgUnreadableBody = "request body could not be read"

	// MsgTooManyRequests is returned when the client IP ran out of rate
	// limit tokens.
	MsgTooManyRequests = "too many requests"
)
