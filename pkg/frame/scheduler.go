// Package frame schedules deferred work against paint opportunities:
// callbacks that wait out a number of paints, and countdowns that fire
// once the animation clock reaches a deadline.
//
// The host drives the package by calling [Step] once per frame. Within a
// step, due paint callbacks fire first in registration order, then due
// countdowns. A countdown with a zero duration scheduled by a paint
// callback fires within the same step.
package frame

import "sync"

var (
	frameMu       sync.Mutex
	pendingPaints []*Callback
)

// Callback is a function scheduled against future paint opportunities.
type Callback struct {
	fn        func()
	remaining int
	active    bool
}

// AfterPaints schedules fn to run once n further paint opportunities
// have occurred. Counts below one are treated as one.
func AfterPaints(n int, fn func()) *Callback {
	if n < 1 {
		n = 1
	}
	c := &Callback{fn: fn, remaining: n, active: true}
	frameMu.Lock()
	pendingPaints = append(pendingPaints, c)
	frameMu.Unlock()
	return c
}

// Cancel drops the whole remaining wait at once. Canceling twice, or
// after the callback has fired, does nothing.
func (c *Callback) Cancel() {
	frameMu.Lock()
	defer frameMu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	for i, cb := range pendingPaints {
		if cb == c {
			pendingPaints = append(pendingPaints[:i], pendingPaints[i+1:]...)
			break
		}
	}
}

// HasPendingPaints reports whether any paint-deferred callbacks wait.
func HasPendingPaints() bool {
	frameMu.Lock()
	defer frameMu.Unlock()
	return len(pendingPaints) > 0
}

// Step advances the scheduler by one paint opportunity. Chains whose
// wait completes fire in registration order, then countdowns that have
// reached their deadline fire. This should be called once per frame by
// the host.
func Step() {
	frameMu.Lock()
	var due []*Callback
	if len(pendingPaints) > 0 {
		keep := pendingPaints[:0]
		for _, c := range pendingPaints {
			c.remaining--
			if c.remaining <= 0 {
				due = append(due, c)
			} else {
				keep = append(keep, c)
			}
		}
		pendingPaints = keep
	}
	frameMu.Unlock()

	// Fire outside the lock; callbacks may schedule or cancel freely.
	for _, c := range due {
		if c.active && c.fn != nil {
			c.active = false
			c.fn()
		}
	}

	fireDueCountdowns()
}

// ResetForTest clears both registries for test isolation. Outstanding
// callbacks and countdowns are silently dropped. This should only be
// called from tests.
func ResetForTest() {
	frameMu.Lock()
	for _, c := range pendingPaints {
		c.active = false
	}
	pendingPaints = nil
	for _, c := range activeCountdowns {
		c.active = false
	}
	activeCountdowns = nil
	frameMu.Unlock()
}
