package inkpad

// stabilize applies the streamline low-pass filter to a raw sample given
// the previously accepted sample. The accepted position lags behind raw
// input by the effective streamline fraction; time, pressure, and pointer
// type pass through unmodified. The filtered sample is what gets stored, so
// replay is reproducible from stored data alone.
//
// The pencil tool halves the streamline strength: it favors a scratchier,
// less-smoothed line.
func stabilize(prev, raw Sample, opts DrawingOptions) Sample {
	eff := opts.Streamline
	if opts.Tool == ToolPencil {
		eff *= 0.5
	}
	if eff <= 0 {
		return raw
	}
	out := raw
	p := prev.Point().Lerp(raw.Point(), 1-eff)
	out.X, out.Y = p.X, p.Y
	return out
}
