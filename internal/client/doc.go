// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the panel's process lifecycle.
//
// It loads the roster, runs the persistence worker next to the terminal
// dashboard and flushes pending changes before the process exits.
package client
