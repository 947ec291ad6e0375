// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// Debouncer delays an action until triggers have been quiet for a fixed
// window. A burst of triggers results in a single call.
//
// The action runs on the Run goroutine, so at most one call is in flight and
// a trigger that arrives during a call schedules exactly one more.
type Debouncer struct {
	wait    time.Duration
	action  func(ctx context.Context)
	trigger chan struct{}
}

// NewDebouncer returns a Debouncer calling action after wait of quiescence.
func NewDebouncer(wait time.Duration, action func(ctx context.Context)) *Debouncer {
	return &Debouncer{
		wait:    wait,
		action:  action,
		trigger: make(chan struct{}, 1),
	}
}

// Trigger (re)starts the quiescence window. It never blocks.
func (d *Debouncer) Trigger() {
	select {
	case d.trigger <- struct{}{}:
	default:
	}
}

// Run processes triggers until ctx is cancelled. A call still pending at
// that point is made once more with a context detached from ctx, so the
// latest changes are not lost on shutdown.
func (d *Debouncer) Run(ctx context.Context) {
	timer := time.NewTimer(d.wait)
	timer.Stop()
	defer timer.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			if !pending {
				select {
				case <-d.trigger:
					pending = true
				default:
				}
			}
			if pending {
				d.action(context.WithoutCancel(ctx))
			}
			return
		case <-d.trigger:
			pending = true
			timer.Reset(d.wait)
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			d.action(ctx)
		}
	}
}
