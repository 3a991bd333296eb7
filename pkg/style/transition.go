package style

import (
	"fmt"
	"time"
)

// Transition is the transition shorthand a controller installs on a node
// before committing a style change. The zero value disables transitions:
// the next style application takes effect immediately.
type Transition struct {
	Property string        // animated property, "all" when empty
	Duration time.Duration
	Timing   string        // timing function keyword, "ease" when empty
}

// Enabled reports whether applied styles animate. A zero duration snaps.
func (t Transition) Enabled() bool {
	return t.Duration > 0
}

// String renders the CSS shorthand, e.g. "all 300ms ease-in-out", or
// "none" when disabled.
func (t Transition) String() string {
	if !t.Enabled() {
		return "none"
	}
	property := t.Property
	if property == "" {
		property = "all"
	}
	timing := t.Timing
	if timing == "" {
		timing = "ease"
	}
	return fmt.Sprintf("%s %dms %s", property, t.Duration.Milliseconds(), timing)
}
