package inkpad

import (
	"context"
	"time"
)

// DefaultReplayInterval is the tick period Run falls back to, roughly one
// 60 Hz frame.
const DefaultReplayInterval = 16 * time.Millisecond

// Replayer re-synthesizes committed strokes segment by segment, using the
// same width model and curve geometry as live capture over the same stored
// samples. Given the same session it therefore reproduces the exact painted
// segments of the original capture, at whatever tick rate it is driven.
//
// The stepper is a pure state machine over (strokeIndex, pointIndex):
// drive it with Step from any frame source, or use Run for a ticker loop.
type Replayer struct {
	surface Surface
	tuning  Tuning
	strokes []*Stroke

	strokeIndex int
	pointIndex  int
	rend        strokeRenderer
	cancelled   bool
}

// Replay clears the surface and returns a stepper over the committed
// strokes. Any previous replay is cancelled. Replay on an empty session
// returns an already-finished stepper.
func (e *Engine) Replay() *Replayer {
	e.cancelReplay()

	strokes := make([]*Stroke, len(e.completed))
	copy(strokes, e.completed)

	if e.surface != nil {
		e.surface.Clear()
	}
	r := &Replayer{
		surface: e.surface,
		tuning:  e.tuning,
		strokes: strokes,
	}
	e.replayer = r

	Logger().Info("inkpad: replay started", "strokes", len(strokes))
	return r
}

// Step advances the replay by one tick, painting at most one segment.
// It reports whether more ticks remain. Cancelled replayers paint nothing.
func (r *Replayer) Step() bool {
	if r.cancelled || r.surface == nil || r.strokeIndex >= len(r.strokes) {
		return false
	}

	st := r.strokes[r.strokeIndex]
	if r.pointIndex == 0 && st.Len() > 0 {
		// Stroke start: reset render memory exactly as live capture did.
		r.rend = newStrokeRenderer(st.Options.normalized(), r.tuning, st.Samples[0])
	}

	if i := r.pointIndex; i+3 <= st.Len() {
		seg := r.rend.segment(st.Samples[i], st.Samples[i+1], st.Samples[i+2])
		r.surface.DrawSegment(seg)
		r.pointIndex++
		if r.pointIndex+3 <= st.Len() {
			return true
		}
	}

	// Stroke exhausted, or degenerate with no segments: move on.
	r.strokeIndex++
	r.pointIndex = 0
	return r.strokeIndex < len(r.strokes)
}

// Done reports whether the replay has finished or been cancelled.
func (r *Replayer) Done() bool {
	return r.cancelled || r.strokeIndex >= len(r.strokes)
}

// Cancel stops the replay before its next tick. Safe to call repeatedly.
func (r *Replayer) Cancel() {
	r.cancelled = true
}

// Run drives the stepper with a ticker until the replay finishes, the
// replay is cancelled, or ctx is done. Intervals <= 0 use
// DefaultReplayInterval.
//
// Run blocks; callers animating a UI typically run it in its own goroutine
// and must not drive the engine concurrently.
func (r *Replayer) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultReplayInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !r.Step() {
				return nil
			}
		}
	}
}
