package inkpad

import (
	"math"
	"testing"
)

func TestSegmentGeometry(t *testing.T) {
	opts := penOpts(ToolPen).normalized()
	p1 := Sample{X: 0, Y: 0, Time: 0, Pressure: PressureUnknown}
	p2 := Sample{X: 10, Y: 0, Time: 10, Pressure: PressureUnknown}
	p3 := Sample{X: 10, Y: 10, Time: 20, Pressure: PressureUnknown}

	r := newStrokeRenderer(opts, DefaultTuning(), p1)
	seg := r.segment(p1, p2, p3)

	// The segment runs midpoint(p1,p2) -> p2 (control) -> midpoint(p2,p3).
	if seg.P0 != (Point{X: 5, Y: 0}) {
		t.Errorf("P0 = %+v, want midpoint of p1,p2", seg.P0)
	}
	if seg.Ctrl != (Point{X: 10, Y: 0}) {
		t.Errorf("Ctrl = %+v, want p2", seg.Ctrl)
	}
	if seg.P2 != (Point{X: 10, Y: 5}) {
		t.Errorf("P2 = %+v, want midpoint of p2,p3", seg.P2)
	}
}

// TestSegmentChaining verifies consecutive segments share endpoints, the
// property that makes the inked curve continuous and tangent-matched.
func TestSegmentChaining(t *testing.T) {
	opts := penOpts(ToolPen).normalized()
	samples := []Sample{
		{X: 0, Y: 0, Time: 0, Pressure: PressureUnknown},
		{X: 10, Y: 5, Time: 10, Pressure: PressureUnknown},
		{X: 18, Y: 14, Time: 20, Pressure: PressureUnknown},
		{X: 30, Y: 16, Time: 30, Pressure: PressureUnknown},
	}

	r := newStrokeRenderer(opts, DefaultTuning(), samples[0])
	a := r.segment(samples[0], samples[1], samples[2])
	b := r.segment(samples[1], samples[2], samples[3])

	if a.P2 != b.P0 {
		t.Errorf("segments not chained: first ends at %+v, second starts at %+v", a.P2, b.P0)
	}
}

func TestSegmentWidthBlending(t *testing.T) {
	opts := penOpts(ToolPen).normalized()
	tn := DefaultTuning()

	p1 := Sample{X: 0, Time: 0, Pressure: PressureUnknown, PointerType: PointerMouse}
	p2 := Sample{X: 5, Time: 10, Pressure: PressureUnknown, PointerType: PointerMouse}
	p3 := Sample{X: 30, Time: 20, Pressure: PressureUnknown, PointerType: PointerMouse}

	r := newStrokeRenderer(opts, tn, p1)
	w0 := r.mem.lastWidth
	seg := r.segment(p1, p2, p3)

	target := targetWidth(opts, tn, p2, p3)
	want := w0*tn.PenBlend + target*(1-tn.PenBlend)
	if math.Abs(seg.Width-want) > 1e-9 {
		t.Errorf("blended width = %v, want %v", seg.Width, want)
	}
	if r.mem.lastWidth != seg.Width {
		t.Errorf("lastWidth = %v, want persisted %v", r.mem.lastWidth, seg.Width)
	}
}

// TestPenWidthDecreasesWithVelocity checks that a mouse stroke at
// increasing speed thins monotonically within [MinWidth, MaxWidth].
func TestPenWidthDecreasesWithVelocity(t *testing.T) {
	opts := penOpts(ToolPen).normalized()
	samples := []Sample{
		{X: 0, Time: 0, Pressure: PressureUnknown, PointerType: PointerMouse},
		{X: 10, Time: 10, Pressure: PressureUnknown, PointerType: PointerMouse},
		{X: 25, Time: 20, Pressure: PressureUnknown, PointerType: PointerMouse},
		{X: 45, Time: 30, Pressure: PressureUnknown, PointerType: PointerMouse},
		{X: 70, Time: 40, Pressure: PressureUnknown, PointerType: PointerMouse},
	}

	r := newStrokeRenderer(opts, DefaultTuning(), samples[0])
	prev := r.mem.lastWidth
	for i := 2; i < len(samples); i++ {
		seg := r.segment(samples[i-2], samples[i-1], samples[i])
		if seg.Width >= prev {
			t.Errorf("segment %d: width %v did not decrease from %v", i-2, seg.Width, prev)
		}
		if seg.Width < opts.MinWidth || seg.Width > opts.MaxWidth {
			t.Errorf("segment %d: width %v outside [%v, %v]", i-2, seg.Width, opts.MinWidth, opts.MaxWidth)
		}
		prev = seg.Width
	}
}

// TestPencilSegmentsKeepFixedAlpha checks that every pencil
// segment carries 70% alpha regardless of speed.
func TestPencilSegmentsKeepFixedAlpha(t *testing.T) {
	opts := penOpts(ToolPencil).normalized()
	samples := []Sample{
		{X: 0, Time: 0},
		{X: 1, Time: 50},   // slow
		{X: 100, Time: 51}, // fast
		{X: 101, Time: 120},
	}

	r := newStrokeRenderer(opts, DefaultTuning(), samples[0])
	for i := 2; i < len(samples); i++ {
		seg := r.segment(samples[i-2], samples[i-1], samples[i])
		if seg.Color.A != 0.7 {
			t.Errorf("segment %d: alpha = %v, want 0.7", i-2, seg.Color.A)
		}
	}
}

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(10, 10)}

	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %+v, want P0", got)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %+v, want P2", got)
	}
	mid := q.Eval(0.5)
	if math.Abs(mid.X-7.5) > 1e-9 || math.Abs(mid.Y-2.5) > 1e-9 {
		t.Errorf("Eval(0.5) = %+v, want (7.5, 2.5)", mid)
	}
}
