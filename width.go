package inkpad

import "math"

// Width model: per-tool mapping from the newest sample pair to a target
// ink width. Targets are blended with exponential memory in the renderer,
// so instantaneous jumps in pressure or velocity never produce steps in
// the inked line.

// targetWidth computes the raw (unblended) width for the newest sample pair
// (p2 older, p3 newest) under the given tool.
func targetWidth(opts DrawingOptions, tn Tuning, p2, p3 Sample) float64 {
	switch opts.Tool {
	case ToolPencil:
		// Constant width; pressure and velocity are ignored.
		return math.Max(tn.PencilWidthFloor, opts.MaxWidth*tn.PencilWidthScale)

	case ToolCalligraphy:
		maxW := opts.MaxWidth * tn.CalligraphyMaxScale
		if p3.PointerType == PointerPen {
			// Quadratic pressure response for sharper contrast.
			p := p3.pressureOr(0.5)
			return opts.MinWidth + (maxW-opts.MinWidth)*p*p
		}
		// Inverse velocity mapping between thick (slow) and thin (fast).
		minW := opts.MinWidth * tn.CalligraphyMinScale
		v := math.Min(Velocity(p2, p3), tn.CalligraphyVelocityCap)
		return maxW - (maxW-minW)*(v/tn.CalligraphyVelocityCap)

	default: // ToolPen
		if p3.PointerType == PointerPen {
			p := p3.pressureOr(0.5)
			return (opts.MinWidth + (opts.MaxWidth-opts.MinWidth)*p) * tn.PenPressureBoost
		}
		// Width shrinks linearly from MaxWidth toward MinWidth as
		// normalized velocity rises.
		v := math.Min(Velocity(p2, p3), tn.PenVelocityCap)
		return opts.MaxWidth - (opts.MaxWidth-opts.MinWidth)*(v/tn.PenVelocityCap)
	}
}

// blendFactor returns the exponential width memory factor k for a tool:
// width = lastWidth*k + target*(1-k).
func blendFactor(tool Tool, tn Tuning) float64 {
	switch tool {
	case ToolPencil:
		return tn.PencilBlend
	case ToolCalligraphy:
		return tn.CalligraphyBlend
	default:
		return tn.PenBlend
	}
}

// initialWidth seeds the width memory at stroke start: the pencil starts at
// half its maximum, a stylus starts pressure-weighted, and everything else
// starts at the midpoint of the configured range.
func initialWidth(opts DrawingOptions, first Sample) float64 {
	switch {
	case opts.Tool == ToolPencil:
		return opts.MaxWidth * 0.5
	case first.PointerType == PointerPen:
		return opts.MinWidth + (opts.MaxWidth-opts.MinWidth)*first.pressureOr(0.5)
	default:
		return (opts.MinWidth + opts.MaxWidth) / 2
	}
}

// toolColor resolves the ink color for a stroke, applying the pencil's
// fixed 70% opacity.
func toolColor(opts DrawingOptions, tn Tuning) RGBA {
	c := Hex(opts.Color)
	if opts.Tool == ToolPencil {
		return c.WithAlpha(tn.PencilAlpha)
	}
	return c
}
