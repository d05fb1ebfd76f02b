package core

import "time"

// FrameStepper converts variable wall-clock frame times into a bounded
// number of fixed-size simulation steps per rendered frame.
type FrameStepper struct {
	step     time.Duration
	maxSteps int
	debt     time.Duration
	last     time.Time
}

// NewFrameStepper constructs a stepper with the given fixed step size and
// per-frame step cap. Non-positive arguments fall back to 1/60s and 4.
func NewFrameStepper(step time.Duration, maxSteps int) *FrameStepper {
	if step <= 0 {
		step = time.Second / 60
	}
	if maxSteps <= 0 {
		maxSteps = 4
	}
	return &FrameStepper{step: step, maxSteps: maxSteps}
}

// Advance accumulates the elapsed time since the previous call and returns
// how many fixed steps the caller should run this frame, capped at the
// per-frame maximum. Residual time debt carries over to the next frame and
// is never reset, so under sustained overload the simulation falls behind
// wall-clock time instead of stalling.
func (f *FrameStepper) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.debt += now.Sub(f.last)
	f.last = now

	steps := 0
	for steps < f.maxSteps && f.debt >= f.step {
		f.debt -= f.step
		steps++
	}
	return steps
}

// Step returns the fixed step duration.
func (f *FrameStepper) Step() time.Duration { return f.step }

// Debt returns the accumulated time not yet converted into steps.
func (f *FrameStepper) Debt() time.Duration { return f.debt }
