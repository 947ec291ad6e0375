// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// buildUnknown replaces build fields the linker did not set.
const buildUnknown = "N/A"

// AppBuildInfo is the version stamp linked into the painel binary with
// -ldflags. The operator sees it through the version command.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds the stamp, replacing empty fields with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return buildUnknown
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// String renders the stamp on one line, as shown by the dashboard.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Versão %s • Data %s • Commit %s", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}
