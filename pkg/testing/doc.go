// Package testing provides a deterministic harness for animation tests.
//
// # Quick Start
//
// Create a harness, drive a controller, and pump frames:
//
//	func TestToast(t *testing.T) {
//	    h := motiontest.NewHarnessWithT(t)
//	    node := motiontest.NewRecorderNode()
//
//	    c := motion.New(false, motion.Options{})
//	    c.Binding().Bind(node)
//
//	    c.SetVisible(true)
//	    if err := h.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if c.Phase() != motion.PhaseEntered {
//	        t.Errorf("Expected entered, got %v", c.Phase())
//	    }
//	}
//
// The harness installs a [FakeClock] as the animation clock and resets
// the frame registries, so tests never depend on wall time. Each Pump is
// one paint opportunity; PumpAndSettle pumps 16ms frames until no
// deferred work remains.
//
// # Recording Style Mutations
//
// [RecorderNode] captures every ApplyStyle and SetTransition call in
// order, for asserting on the two-phase commit:
//
//	if !node.Applied[0].Equal(wantFrom) {
//	    t.Errorf("staged %v, want %v", node.Applied[0], wantFrom)
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
