package motion

import "fmt"

// Phase identifies where a controller is in the mount/unmount lifecycle.
//
// The phase follows this state machine:
//
//	           SetVisible(true)              commit + duration
//	Hidden ──────────────────────► Entering ──────────────────► Entered
//	   ▲                               │                           │
//	   │                               │     SetVisible(false)     │
//	   │        duration               ▼                           │
//	   └─────────────────────────── Exiting ◄──────────────────────┘
//
// Presence is true in every phase except Hidden.
type Phase int

const (
	// PhaseHidden means the element is off the surface with no work pending.
	PhaseHidden Phase = iota
	// PhaseEntering means the element is present and its style commit or
	// enter animation is still in flight.
	PhaseEntering
	// PhaseEntered means the element is present and settled.
	PhaseEntered
	// PhaseExiting means the element is present, collapsed style applied,
	// waiting out the exit duration.
	PhaseExiting
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseEntering:
		return "entering"
	case PhaseEntered:
		return "entered"
	case PhaseExiting:
		return "exiting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
