package frame

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

var activeCountdowns []*Countdown

// Countdown fires a function the first step at which the animation
// clock has reached its deadline. Unlike a time.Timer it never fires
// between frames, so callers observe mutations only at paint boundaries.
type Countdown struct {
	fn       func()
	deadline time.Time
	active   bool
}

// After schedules fn to fire once d has elapsed on the animation clock.
// A non-positive duration fires on the current or next step.
func After(d time.Duration, fn func()) *Countdown {
	c := &Countdown{fn: fn, deadline: animation.Now().Add(d), active: true}
	frameMu.Lock()
	activeCountdowns = append(activeCountdowns, c)
	frameMu.Unlock()
	return c
}

// Stop deactivates the countdown. Stopping twice, or after it has
// fired, does nothing.
func (c *Countdown) Stop() {
	frameMu.Lock()
	defer frameMu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	for i, cd := range activeCountdowns {
		if cd == c {
			activeCountdowns = append(activeCountdowns[:i], activeCountdowns[i+1:]...)
			break
		}
	}
}

// HasActiveCountdowns reports whether any countdowns are waiting.
func HasActiveCountdowns() bool {
	frameMu.Lock()
	defer frameMu.Unlock()
	return len(activeCountdowns) > 0
}

func fireDueCountdowns() {
	now := animation.Now()

	frameMu.Lock()
	var due []*Countdown
	if len(activeCountdowns) > 0 {
		keep := activeCountdowns[:0]
		for _, c := range activeCountdowns {
			if !now.Before(c.deadline) {
				due = append(due, c)
			} else {
				keep = append(keep, c)
			}
		}
		activeCountdowns = keep
	}
	frameMu.Unlock()

	for _, c := range due {
		if c.active && c.fn != nil {
			c.active = false
			c.fn()
		}
	}
}
