// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/MKhiriev/go-client-panel/models"
)

// PanelZone is the single fixed offset (UTC-03:00) used for every day
// boundary in the panel: status projection, renewals and daily backup slots.
var PanelZone = time.FixedZone("UTC-3", -3*60*60)

// Clock abstracts the current instant so day-dependent logic can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements [Clock].
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now implements [Clock].
func (c FixedClock) Now() time.Time {
	return c.At
}

// ClockAt returns a FixedClock set to midday of the given date in PanelZone,
// far from any day boundary.
func ClockAt(d models.Date) FixedClock {
	return FixedClock{At: d.In(PanelZone).Add(12 * time.Hour)}
}

// Today returns the calendar date of clock.Now() in PanelZone.
func Today(clock Clock) models.Date {
	return models.DateOf(clock.Now().In(PanelZone))
}
