package animation

import (
	"image/color"
	"testing"
	"time"
)

func TestTweenFloat64(t *testing.T) {
	tw := TweenFloat64(100, 200)

	if got := tw.Evaluate(0); got != 100 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := tw.Evaluate(0.5); got != 150 {
		t.Errorf("Evaluate(0.5) = %v, want 150", got)
	}
	if got := tw.Evaluate(1); got != 200 {
		t.Errorf("Evaluate(1) = %v, want 200", got)
	}
}

func TestTweenRGBA(t *testing.T) {
	tw := TweenRGBA(color.RGBA{A: 255}, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	if got := tw.Evaluate(0); got != (color.RGBA{A: 255}) {
		t.Errorf("Evaluate(0) = %+v, want begin color", got)
	}
	mid := tw.Evaluate(0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 255}
	if mid != want {
		t.Errorf("Evaluate(0.5) = %+v, want %+v", mid, want)
	}
	if got := tw.Evaluate(1); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("Evaluate(1) = %+v, want end color", got)
	}
}

func TestTweenNilLerpReturnsEnd(t *testing.T) {
	tw := &Tween[string]{Begin: "a", End: "b"}

	if got := tw.Evaluate(0.5); got != "b" {
		t.Errorf("Evaluate with nil Lerp = %q, want %q", got, "b")
	}
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

func TestSetClock(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := SetClock(stubClock{now: fixed})
	defer SetClock(prev)

	if got := Now(); !got.Equal(fixed) {
		t.Errorf("Now() = %v, want %v", got, fixed)
	}
	if got := Since(fixed.Add(-time.Second)); got != time.Second {
		t.Errorf("Since = %v, want 1s", got)
	}
}
