package inkpad

// Segment is one quadratic ink segment: the renderer's output unit and the
// Surface's input unit. The curve runs from P0 through the Ctrl vertex to
// P2 with a uniform width and color.
type Segment struct {
	P0, Ctrl, P2 Point
	Width        float64
	Color        RGBA
}

// Quad returns the segment's curve geometry.
func (s Segment) Quad() QuadBez {
	return QuadBez{P0: s.P0, P1: s.Ctrl, P2: s.P2}
}

// renderMemory is the exponential state carried across the segments of one
// stroke. It is reset at stroke start and discarded when the stroke commits.
type renderMemory struct {
	lastPoint Sample
	lastWidth float64
}

// strokeRenderer turns a sliding three-sample window into Segments. It is
// stateless aside from renderMemory; the same renderer logic drives both
// live capture and replay, which is what makes replay deterministic.
type strokeRenderer struct {
	opts   DrawingOptions
	tuning Tuning
	ink    RGBA
	mem    renderMemory
}

// newStrokeRenderer seeds render memory for a stroke beginning at first.
func newStrokeRenderer(opts DrawingOptions, tn Tuning, first Sample) strokeRenderer {
	return strokeRenderer{
		opts:   opts,
		tuning: tn,
		ink:    toolColor(opts, tn),
		mem: renderMemory{
			lastPoint: first,
			lastWidth: initialWidth(opts, first),
		},
	}
}

// segment synthesizes the newest segment from the window (p1 older, p2
// middle, p3 newest): one quadratic from midpoint(p1,p2) through p2 to
// midpoint(p2,p3). Chaining through midpoints makes consecutive segments
// share tangents. The width model's target is blended with the previous
// width so the inked line thins and thickens smoothly.
func (r *strokeRenderer) segment(p1, p2, p3 Sample) Segment {
	k := blendFactor(r.opts.Tool, r.tuning)
	target := targetWidth(r.opts, r.tuning, p2, p3)
	w := r.mem.lastWidth*k + target*(1-k)
	r.mem.lastWidth = w
	r.mem.lastPoint = p3

	return Segment{
		P0:    Midpoint(p1, p2).Point(),
		Ctrl:  p2.Point(),
		P2:    Midpoint(p2, p3).Point(),
		Width: w,
		Color: r.ink,
	}
}
