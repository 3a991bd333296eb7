package animation

import (
	"math"
	"testing"
)

func TestCubicBezierEndpoints(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)

	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %v, want 0", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %v, want 1", got)
	}
	if got := curve(-0.5); got != 0 {
		t.Errorf("curve(-0.5) = %v, want 0", got)
	}
	if got := curve(1.5); got != 1 {
		t.Errorf("curve(1.5) = %v, want 1", got)
	}
}

func TestCubicBezierLinearControlPoints(t *testing.T) {
	// Control points on the diagonal produce the identity curve.
	curve := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, in := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := curve(in); math.Abs(got-in) > 1e-3 {
			t.Errorf("curve(%v) = %v, want ~%v", in, got, in)
		}
	}
}

func TestParseTimingFunctionKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want func(float64) float64
	}{
		{"linear", LinearCurve},
		{"ease", Ease},
		{"ease-in", EaseIn},
		{"ease-out", EaseOut},
		{"ease-in-out", EaseInOut},
		{" ease-in-out ", EaseInOut},
	}
	for _, tt := range tests {
		curve, ok := ParseTimingFunction(tt.in)
		if !ok {
			t.Errorf("ParseTimingFunction(%q) not ok", tt.in)
			continue
		}
		// Curves are functions; compare by sampling.
		for _, in := range []float64{0, 0.3, 0.7, 1} {
			if got, want := curve(in), tt.want(in); got != want {
				t.Errorf("ParseTimingFunction(%q)(%v) = %v, want %v", tt.in, in, got, want)
			}
		}
	}
}

func TestParseTimingFunctionCubicBezier(t *testing.T) {
	curve, ok := ParseTimingFunction("cubic-bezier(0.4, 0.0, 0.2, 1.0)")
	if !ok {
		t.Fatal("expected cubic-bezier() to parse")
	}
	want := EaseInOut
	for _, in := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := curve(in); got != want(in) {
			t.Errorf("curve(%v) = %v, want %v", in, got, want(in))
		}
	}
}

func TestParseTimingFunctionInvalid(t *testing.T) {
	for _, in := range []string{"", "bounce", "cubic-bezier(1,2,3)", "cubic-bezier(a,b,c,d)", "cubic-bezier(0,0,1,1"} {
		if _, ok := ParseTimingFunction(in); ok {
			t.Errorf("ParseTimingFunction(%q) should not be ok", in)
		}
	}
}
