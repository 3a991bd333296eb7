package motion

import (
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/frame"
	"github.com/go-drift/motion/pkg/style"
)

// Controller coordinates the visual lifecycle of one transient element.
//
// The caller owns a visibility intent and flips it through SetVisible;
// the controller derives presence, times style mutations against the
// host's paint cycle, and fires the lifecycle callbacks configured in
// Options. Presence stays true for the whole exit animation, so the
// element can remain on the surface until its exit has played.
//
// A controller is single-threaded: drive it, and the frame package, from
// the host UI goroutine. Always call Dispose when the owning component
// goes away; a disposed controller performs no further style mutations
// and invokes no further callbacks.
//
// See ExampleNew for the typical wiring.
type Controller struct {
	opts    Options
	visible bool
	phase   Phase

	presence *core.Observable[bool]
	binding  *NodeBinding
	life     core.Lifetime

	// At most one of each is pending; every new transition cancels
	// both before scheduling its own.
	frames    *frame.Callback
	countdown *frame.Countdown

	listeners      map[int]func()
	phaseListeners map[int]func(Phase)
	nextListenerID int
}

// New creates a controller whose element starts visible or hidden.
//
// A controller created visible runs the normal enter path immediately so
// cold start and later toggles share one code path; whether that first
// enter visually animates is Options.AnimateInitial.
func New(initialVisible bool, opts Options) *Controller {
	c := &Controller{
		opts:           opts.withDefaults(),
		phase:          PhaseHidden,
		presence:       core.NewObservable(false),
		binding:        &NodeBinding{},
		listeners:      make(map[int]func()),
		phaseListeners: make(map[int]func(Phase)),
	}
	c.life.OnDispose(func() {
		c.cancelPending()
		c.binding.Clear()
		c.listeners = nil
		c.phaseListeners = nil
	})
	if initialVisible {
		c.visible = true
		c.enter(c.opts.AnimateInitial)
	}
	return c
}

// SetVisible sets the visibility intent. Setting the current value is a
// strict no-op: no timer, no callback, no style write.
func (c *Controller) SetVisible(visible bool) {
	if c.life.IsDisposed() || visible == c.visible {
		return
	}
	c.visible = visible
	if visible {
		c.enter(true)
	} else if c.presence.Value() {
		c.exit()
	}
}

// UpdateVisible sets the intent from its current value, for toggles that
// must not race a stale read: UpdateVisible(func(v bool) bool { return !v }).
func (c *Controller) UpdateVisible(update func(bool) bool) {
	if c.life.IsDisposed() || update == nil {
		return
	}
	c.SetVisible(update(c.visible))
}

// Visible returns the current visibility intent.
func (c *Controller) Visible() bool {
	return c.visible
}

// Present reports whether the element currently exists on the surface.
// It trails Visible during an exit animation.
func (c *Controller) Present() bool {
	return c.presence.Value()
}

// Presence returns the observable backing Present, for subscriptions
// via core.UseObservable.
func (c *Controller) Presence() *core.Observable[bool] {
	return c.presence
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// IsAnimating reports whether an enter or exit is in flight.
func (c *Controller) IsAnimating() bool {
	return c.phase == PhaseEntering || c.phase == PhaseExiting
}

// Binding returns the node slot. Attach the rendered element whenever
// presence puts it on the surface; the controller clears the slot when
// the element leaves.
func (c *Controller) Binding() *NodeBinding {
	return c.binding
}

// AddListener adds a callback that fires on any presence or phase
// change. Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	if c.life.IsDisposed() {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddPhaseListener adds a callback that fires whenever the phase
// changes. Returns an unsubscribe function.
func (c *Controller) AddPhaseListener(fn func(Phase)) func() {
	if c.life.IsDisposed() {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.phaseListeners[id] = fn
	return func() {
		delete(c.phaseListeners, id)
	}
}

// OnDispose registers a cleanup to run when the controller is disposed.
// Returns an unregister function.
func (c *Controller) OnDispose(cleanup func()) func() {
	return c.life.OnDispose(cleanup)
}

// IsDisposed reports whether Dispose has run.
func (c *Controller) IsDisposed() bool {
	return c.life.IsDisposed()
}

// Dispose tears the controller down: pending frame callbacks and timers
// are cancelled, the binding is cleared, and no callback fires again.
// Dispose is idempotent.
func (c *Controller) Dispose() {
	c.life.Dispose()
}

// enter drives Hidden/Exiting into Entering. With animate false the
// collapsed style is never staged and the commit snaps to the expanded
// form, which is how a controller created visible suppresses its first
// animation.
func (c *Controller) enter(animate bool) {
	c.cancelPending()
	kf := c.opts.Effect.Resolve()
	tr := c.transition()

	c.setPresence(true)
	c.setPhase(PhaseEntering)
	c.invoke("OnEnter", c.opts.OnEnter)

	if animate {
		// Stage the collapsed form with transitions off so the renderer
		// commits it as the animation's starting point.
		c.binding.setTransition(style.Transition{})
		c.binding.applyStyle(kf.From)
	}

	// The first paint opportunity may be consumed by the node's initial
	// insertion into the tree, so the commit waits out two.
	c.frames = frame.AfterPaints(2, func() {
		if c.life.IsDisposed() {
			return
		}
		c.frames = nil
		if animate {
			c.binding.setTransition(tr)
		} else {
			c.binding.setTransition(style.Transition{})
		}
		c.binding.applyStyle(kf.To)
		c.countdown = frame.After(c.opts.Duration, func() {
			if c.life.IsDisposed() {
				return
			}
			c.countdown = nil
			c.setPhase(PhaseEntered)
			c.invoke("OnEntered", c.opts.OnEntered)
		})
	})
}

// exit drives Entering/Entered into Exiting. The node is already painted
// in its expanded form, so applying the collapsed style with the
// transition active starts the exit animation in the same tick.
func (c *Controller) exit() {
	c.cancelPending()
	kf := c.opts.Effect.Resolve()

	c.setPhase(PhaseExiting)
	c.invoke("OnExit", c.opts.OnExit)

	c.binding.setTransition(c.transition())
	c.binding.applyStyle(kf.From)

	c.countdown = frame.After(c.opts.Duration, func() {
		if c.life.IsDisposed() {
			return
		}
		c.countdown = nil
		c.setPresence(false)
		c.binding.Clear()
		c.setPhase(PhaseHidden)
		c.invoke("OnExited", c.opts.OnExited)
	})
}

func (c *Controller) cancelPending() {
	if c.frames != nil {
		c.frames.Cancel()
		c.frames = nil
	}
	if c.countdown != nil {
		c.countdown.Stop()
		c.countdown = nil
	}
}

func (c *Controller) transition() style.Transition {
	return style.Transition{
		Duration: c.opts.Duration,
		Timing:   c.opts.TimingFunction,
	}
}

func (c *Controller) setPresence(present bool) {
	if c.presence.Value() == present {
		return
	}
	c.presence.Set(present)
	c.notifyListeners()
}

func (c *Controller) setPhase(phase Phase) {
	if c.phase == phase {
		return
	}
	c.phase = phase
	for _, listener := range c.phaseListeners {
		listener(phase)
	}
	c.notifyListeners()
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// invoke runs a user callback with panic isolation so a throwing
// callback cannot corrupt the state machine.
func (c *Controller) invoke(hook string, fn func()) {
	if fn == nil {
		return
	}
	defer errors.RecoverCallback(hook)
	fn()
}
