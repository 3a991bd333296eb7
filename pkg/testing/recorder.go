package testing

import "github.com/go-drift/motion/pkg/style"

// RecorderNode records every style mutation a controller performs, for
// asserting on commit ordering and staged keyframes. It satisfies the
// motion Node interface.
type RecorderNode struct {
	// Applied holds every ApplyStyle argument in call order.
	Applied []style.Props
	// Transitions holds every SetTransition argument in call order.
	Transitions []style.Transition

	current style.Props
}

// NewRecorderNode returns an empty recorder.
func NewRecorderNode() *RecorderNode {
	return &RecorderNode{current: style.Props{}}
}

// ApplyStyle merges p into the node's current style and records the call.
func (n *RecorderNode) ApplyStyle(p style.Props) {
	n.Applied = append(n.Applied, p.Clone())
	n.current = n.current.Merge(p)
}

// SetTransition records the installed transition shorthand.
func (n *RecorderNode) SetTransition(t style.Transition) {
	n.Transitions = append(n.Transitions, t)
}

// Current returns the merged style the node would render with.
func (n *RecorderNode) Current() style.Props {
	return n.current.Clone()
}

// Transition returns the most recently installed transition shorthand,
// or the zero (disabled) transition if none was set.
func (n *RecorderNode) Transition() style.Transition {
	if len(n.Transitions) == 0 {
		return style.Transition{}
	}
	return n.Transitions[len(n.Transitions)-1]
}

// Reset clears all recorded calls and the current style.
func (n *RecorderNode) Reset() {
	n.Applied = nil
	n.Transitions = nil
	n.current = style.Props{}
}
