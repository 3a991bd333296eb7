package motion

import "time"

// Defaults applied by New when the corresponding option is zero.
const (
	DefaultDuration = 300 * time.Millisecond
	DefaultTiming   = "ease-in-out"
)

// Options configures a Controller. The zero value animates with the
// default fade preset over 300ms.
type Options struct {
	// Duration is the length of both the enter and exit animations.
	// Zero or negative falls back to DefaultDuration.
	Duration time.Duration

	// Effect selects the animation keyframes. The zero value resolves to
	// the default preset.
	Effect Effect

	// TimingFunction is the CSS timing function installed on transitions.
	// Empty falls back to DefaultTiming.
	TimingFunction string

	// AnimateInitial stages the collapsed style on a controller created
	// visible, so the very first paint animates like any later toggle.
	// When false the first commit snaps straight to the expanded form.
	AnimateInitial bool

	// OnEnter fires synchronously when the element begins entering.
	OnEnter func()
	// OnEntered fires once the enter duration has elapsed after the
	// style commit.
	OnEntered func()
	// OnExit fires synchronously when the element begins exiting.
	OnExit func()
	// OnExited fires once the exit duration has elapsed and the element
	// has left the surface.
	OnExited func()
}

func (o Options) withDefaults() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.TimingFunction == "" {
		o.TimingFunction = DefaultTiming
	}
	return o
}
