// Package motion coordinates mount and unmount animations for transient
// UI elements.
//
// Instead of vanishing the instant its logical visibility flips false,
// an element managed by a [Controller] stays present on the surface long
// enough to play an exit animation, then detaches. The controller keeps
// two booleans apart: the caller-owned visibility intent, and presence,
// which it derives and which nothing else may write.
//
// # Lifecycle
//
// A controller moves through four phases:
//
//	Hidden → Entering → Entered → Exiting → Hidden
//
// Flipping the intent true applies the effect's collapsed keyframe with
// transitions disabled, waits two paint opportunities so the renderer
// commits that state, then re-enables the transition and applies the
// expanded keyframe. Flipping the intent false applies the collapsed
// keyframe immediately with the transition active and starts the exit
// countdown; only when it elapses does presence turn false.
//
// # Wiring
//
// Gate rendering on Present, attach the rendered node through Binding
// whenever the element is on the surface, and drive frames from the
// host's paint loop:
//
//	c := motion.New(false, motion.Options{
//	    Effect:   motion.Effect{Preset: "slide"},
//	    OnExited: releaseResources,
//	})
//	c.Binding().Bind(node)
//	c.SetVisible(true)
//	// each frame: frame.Step()
//
// Never attaching a node degrades to plain show/hide with the callbacks
// still firing at the right times.
//
// # Effects
//
// Effects resolve through a process-wide preset registry seeded with
// fade, slide and zoom. [RegisterPreset] extends it, and explicit
// [Keyframes] bypass it entirely. Unknown preset names silently resolve
// to [DefaultPreset]; animation misconfiguration is never fatal.
package motion
