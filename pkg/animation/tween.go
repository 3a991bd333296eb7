package animation

import "image/color"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of a transition to any value range or type.
// Use the helper constructors ([TweenFloat64], [TweenRGBA]) for common
// types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpRGBA linearly interpolates two colors channel by channel.
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(LerpFloat64(float64(a.R), float64(b.R), t)),
		G: uint8(LerpFloat64(float64(a.G), float64(b.G), t)),
		B: uint8(LerpFloat64(float64(a.B), float64(b.B), t)),
		A: uint8(LerpFloat64(float64(a.A), float64(b.A), t)),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenRGBA creates a tween for RGBA color values.
func TweenRGBA(begin, end color.RGBA) *Tween[color.RGBA] {
	return &Tween[color.RGBA]{
		Begin: begin,
		End:   end,
		Lerp:  LerpRGBA,
	}
}
