// Package term hosts motion-controlled elements on a terminal surface.
//
// Surface implements the motion Node interface over lipgloss rendering:
// style bags become cell-space approximations, with opacity blended into
// the foreground color, translateY mapped to row offsets, and scale
// widening horizontal padding. Panel wires a Surface and a Controller
// into a bubbletea model whose frame ticks drive the frame scheduler.
package term

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/motion"
	"github.com/go-drift/motion/pkg/style"
)

// PixelsPerRow is the vertical conversion factor between style-bag
// pixels and terminal rows. 16px matches one line of text at the
// typical font size, so translateY(-20px) shifts a touch over one row.
const PixelsPerRow = 16.0

// visual is the numeric form of a style bag that a terminal can render.
type visual struct {
	opacity    float64
	translateY float64
	scale      float64
}

func visualOf(p style.Props) visual {
	v := visual{opacity: 1, scale: 1}
	if raw, ok := p[style.PropOpacity]; ok {
		v.opacity = style.ParseOpacity(raw)
	}
	if raw, ok := p[style.PropTransform]; ok {
		tf := style.ParseTransform(raw)
		v.translateY = tf.TranslateY
		v.scale = tf.Scale
	}
	return v
}

func lerpVisual(a, b visual, t float64) visual {
	return visual{
		opacity:    animation.LerpFloat64(a.opacity, b.opacity, t),
		translateY: animation.LerpFloat64(a.translateY, b.translateY, t),
		scale:      animation.LerpFloat64(a.scale, b.scale, t),
	}
}

// Surface renders one element's content under its controller-applied
// style. It satisfies the motion Node interface: SetTransition installs
// the shorthand governing the next ApplyStyle, and ApplyStyle either
// snaps or begins an interpolation from the currently rendered state.
//
// Like a controller, a Surface belongs to the host UI goroutine.
type Surface struct {
	content string
	accent  color.RGBA

	transition style.Transition
	curve      func(float64) float64

	committed style.Props
	rendered  visual
	begin     visual
	target    visual
	start     time.Time
	animating bool
}

var _ motion.Node = (*Surface)(nil)

// NewSurface creates a surface showing content in the accent color,
// rendered fully expanded until a controller styles it.
func NewSurface(content string, accent color.RGBA) *Surface {
	v := visual{opacity: 1, scale: 1}
	return &Surface{
		content:   content,
		accent:    accent,
		committed: style.Props{},
		rendered:  v,
		target:    v,
		curve:     animation.EaseInOut,
	}
}

// SetTransition installs the transition shorthand for subsequent style
// applications. The zero transition makes the next ApplyStyle snap.
func (s *Surface) SetTransition(t style.Transition) {
	s.transition = t
	if curve, ok := animation.ParseTimingFunction(t.Timing); ok {
		s.curve = curve
	} else {
		s.curve = animation.EaseInOut
	}
}

// ApplyStyle merges p into the surface's committed style. With a
// transition installed the surface interpolates from whatever it is
// rendering right now toward the merged target, the same way a
// mid-animation property change re-tweens from the current value.
// Without one, the new state renders on the next frame.
func (s *Surface) ApplyStyle(p style.Props) {
	s.Advance()
	s.committed = s.committed.Merge(p)
	s.target = visualOf(s.committed)
	if s.transition.Enabled() {
		s.begin = s.rendered
		s.start = animation.Now()
		s.animating = true
		return
	}
	s.rendered = s.target
	s.animating = false
}

// Advance recomputes the rendered state from the animation clock. Hosts
// call it once per frame, after stepping the frame scheduler.
func (s *Surface) Advance() {
	if !s.animating {
		return
	}
	t := float64(animation.Since(s.start)) / float64(s.transition.Duration)
	if t >= 1 {
		s.rendered = s.target
		s.animating = false
		return
	}
	s.rendered = lerpVisual(s.begin, s.target, s.curve(t))
}

// Animating reports whether an interpolation is in flight.
func (s *Surface) Animating() bool {
	return s.animating
}

// Opacity returns the currently rendered opacity in [0, 1].
func (s *Surface) Opacity() float64 {
	return s.rendered.opacity
}

// TranslateY returns the currently rendered vertical offset in pixels.
func (s *Surface) TranslateY() float64 {
	return s.rendered.translateY
}

// Scale returns the currently rendered scale factor.
func (s *Surface) Scale() float64 {
	return s.rendered.scale
}

// Committed returns a copy of the style bag the surface has merged so
// far, independent of any in-flight interpolation.
func (s *Surface) Committed() style.Props {
	return s.committed.Clone()
}

// backgroundRGBA is the color opacity blends toward, picked once per
// render from the terminal's reported background.
func backgroundRGBA() color.RGBA {
	if termenv.HasDarkBackground() {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// Render draws the surface's content with the current visual state
// approximated in cell space: opacity blends the accent toward the
// terminal background, translateY becomes a row offset, and scale
// widens or narrows horizontal padding.
func (s *Surface) Render() string {
	fg := animation.TweenRGBA(backgroundRGBA(), s.accent).Evaluate(s.rendered.opacity)

	pad := int(math.Round(2 * s.rendered.scale))
	if pad < 0 {
		pad = 0
	}

	box := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexRGB(fg))).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hexRGB(fg))).
		Padding(0, pad).
		Render(s.content)

	// Rows above the content push it down; negative offsets shift it up
	// only as far as the box's own top edge allows.
	rows := int(math.Round(s.rendered.translateY / PixelsPerRow))
	if rows > 0 {
		box = strings.Repeat("\n", rows) + box
	}
	return box
}

func hexRGB(c color.RGBA) string {
	const digits = "0123456789abcdef"
	out := [7]byte{'#'}
	for i, b := range [3]uint8{c.R, c.G, c.B} {
		out[1+2*i] = digits[b>>4]
		out[2+2*i] = digits[b&0xF]
	}
	return string(out[:])
}
