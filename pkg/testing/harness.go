package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/frame"
)

// FrameDuration is the simulated frame interval used by PumpFor and
// PumpAndSettle, matching a 60fps paint loop.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: deferred work did not settle")

// Harness drives controllers deterministically: it owns a fake animation
// clock and steps paint opportunities by hand, so enter commits and
// duration countdowns fire exactly when a test says they do.
type Harness struct {
	clock     *FakeClock
	prevClock animation.Clock
}

// NewHarness creates a harness with a fresh clock and empty frame
// registries. Call Cleanup() when done, or use NewHarnessWithT() instead.
func NewHarness() *Harness {
	h := &Harness{clock: NewFakeClock()}
	h.prevClock = animation.SetClock(h.clock)
	frame.ResetForTest()
	return h
}

// NewHarnessWithT creates a harness that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the animation clock and resets the frame registries.
// Must be called if not using NewHarnessWithT.
func (h *Harness) Cleanup() {
	frame.ResetForTest()
	animation.SetClock(h.prevClock)
}

// Clock returns the fake clock for advancing time directly.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Pump runs a single paint opportunity at the current clock time.
func (h *Harness) Pump() {
	frame.Step()
}

// PumpFrames pumps n paint opportunities, advancing the clock by one
// frame after each.
func (h *Harness) PumpFrames(n int) {
	for range n {
		frame.Step()
		h.clock.Advance(FrameDuration)
	}
}

// PumpFor pumps whole frames until at least d has elapsed on the clock.
func (h *Harness) PumpFor(d time.Duration) {
	frames := int((d + FrameDuration - 1) / FrameDuration)
	h.PumpFrames(frames)
}

// PumpAndSettle pumps frames until no deferred work remains or the
// timeout is reached. Each frame advances the fake clock by
// FrameDuration. Returns ErrSettleTimeout if work remains at timeout.
func (h *Harness) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		frame.Step()
		if !h.needsWork() {
			return nil
		}
		h.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// needsWork returns true if any paint callbacks or countdowns wait.
func (h *Harness) needsWork() bool {
	return frame.HasPendingPaints() || frame.HasActiveCountdowns()
}
