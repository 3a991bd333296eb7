package motion

import "github.com/go-drift/motion/pkg/style"

// Node is a rendered element a controller can style. Hosts implement it
// for whatever a node means to them; pkg/term's Surface styles terminal
// cells, tests record the calls.
type Node interface {
	// ApplyStyle merges the given properties into the node's inline style.
	ApplyStyle(style.Props)
	// SetTransition installs the transition shorthand governing how
	// subsequent ApplyStyle calls take visual effect.
	SetTransition(style.Transition)
}

// NodeBinding is the single slot connecting a controller to the node it
// animates. The slot is empty while the element is off the surface, and
// controller-side mutations are silent no-ops in that window. A
// controller whose binding is never filled degrades to plain show/hide
// with correct callbacks and no animation.
type NodeBinding struct {
	node Node
}

// Bind attaches the rendered node. Binding while a node is attached
// replaces it.
func (b *NodeBinding) Bind(n Node) {
	b.node = n
}

// Clear empties the slot.
func (b *NodeBinding) Clear() {
	b.node = nil
}

// IsBound reports whether a node is attached.
func (b *NodeBinding) IsBound() bool {
	return b.node != nil
}

func (b *NodeBinding) applyStyle(p style.Props) {
	if b.node == nil {
		return
	}
	b.node.ApplyStyle(p)
}

func (b *NodeBinding) setTransition(t style.Transition) {
	if b.node == nil {
		return
	}
	b.node.SetTransition(t)
}
