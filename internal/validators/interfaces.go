// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values before they reach a store: client
// records typed by the operator and bin records posted to the bin server.
//
// Validators are stateless and safe for concurrent use. Passing field names
// to Validate restricts the check to those fields; no names means all of
// them.
package validators

import "context"

// Validator checks obj, optionally only the named fields. Errors wrap one of
// the sentinels in this package.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
