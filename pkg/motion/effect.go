package motion

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-drift/motion/pkg/style"
)

// Keyframes is an explicit pair of style bags: the collapsed form the
// element animates from and the expanded form it animates to.
type Keyframes struct {
	From style.Props
	To   style.Props
}

// Effect selects the animation applied across enter and exit. A non-nil
// Keyframes overrides Preset entirely; otherwise Preset names a
// registered preset, falling back to [DefaultPreset] when unknown.
type Effect struct {
	Preset    string
	Keyframes *Keyframes
}

// DefaultPreset is the preset used when an effect resolves to nothing else.
const DefaultPreset = "fade"

var (
	presetMu sync.RWMutex
	presets  = map[string]Keyframes{
		"fade": {
			From: style.Props{style.PropOpacity: "0"},
			To:   style.Props{style.PropOpacity: "1"},
		},
		"slide": {
			From: style.Props{style.PropTransform: "translateY(-20px)", style.PropOpacity: "0"},
			To:   style.Props{style.PropTransform: "translateY(0)", style.PropOpacity: "1"},
		},
		"zoom": {
			From: style.Props{style.PropTransform: "scale(0.95)", style.PropOpacity: "0"},
			To:   style.Props{style.PropTransform: "scale(1)", style.PropOpacity: "1"},
		},
	}
)

// Resolve returns the concrete keyframe pair for the effect. Explicit
// keyframes are returned exactly as supplied; unknown or empty preset
// names resolve to the default preset, so a misconfigured effect never
// fails a mount. Callers must not mutate the resolved bags.
func (e Effect) Resolve() Keyframes {
	if e.Keyframes != nil {
		return *e.Keyframes
	}
	presetMu.RLock()
	defer presetMu.RUnlock()
	if kf, ok := presets[e.Preset]; ok {
		return kf
	}
	return presets[DefaultPreset]
}

// RegisterPreset adds or replaces a named preset process-wide. The
// keyframes are copied, so later mutation of the supplied bags does not
// affect the registry.
func RegisterPreset(name string, kf Keyframes) error {
	if name == "" {
		return fmt.Errorf("register preset: empty name")
	}
	if len(kf.From) == 0 || len(kf.To) == 0 {
		return fmt.Errorf("register preset %q: empty keyframes", name)
	}
	presetMu.Lock()
	presets[name] = Keyframes{From: kf.From.Clone(), To: kf.To.Clone()}
	presetMu.Unlock()
	return nil
}

// LookupPreset returns the keyframes registered under name.
func LookupPreset(name string) (Keyframes, bool) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	kf, ok := presets[name]
	return kf, ok
}

// PresetNames lists the registered preset names sorted alphabetically.
func PresetNames() []string {
	presetMu.RLock()
	defer presetMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
