package main

import (
	"math"

	"github.com/gogpu/inkpad"
)

// signatureTrace synthesizes a few flourished strokes resembling a
// handwritten signature, scaled to the given logical surface. Sample
// timestamps advance unevenly so the velocity-driven tools show their
// variable width.
func signatureTrace(width, height float64) [][]inkpad.Sample {
	cx, cy := width/2, height/2
	amp := height * 0.28

	var strokes [][]inkpad.Sample

	// Main flourish: a looping sinusoid sweeping left to right, slowing
	// down in the loops and speeding up on the connecting runs.
	var main []inkpad.Sample
	t := 0.0
	const n = 120
	for i := 0; i <= n; i++ {
		u := float64(i) / n
		x := width*0.12 + u*width*0.72
		y := cy + amp*math.Sin(u*4.5*math.Pi)*math.Cos(u*math.Pi*0.7)
		// Slow near sine peaks, fast through the midline.
		speed := 0.6 + 1.8*math.Abs(math.Cos(u*4.5*math.Pi))
		t += 4.0 / speed
		main = append(main, sample(x, y, t, u))
	}
	strokes = append(strokes, main)

	// Underline swash.
	var swash []inkpad.Sample
	for i := 0; i <= 48; i++ {
		u := float64(i) / 48
		x := width*0.2 + u*width*0.6
		y := cy + amp*1.35 + amp*0.18*math.Sin(u*math.Pi)
		t += 2.2 + 2.0*u // accelerate toward the tail
		swash = append(swash, sample(x, y, t, 1-u))
	}
	strokes = append(strokes, swash)

	// Finishing dot: a degenerate stroke, kept deliberately to exercise
	// the dot/dab path.
	t += 60
	strokes = append(strokes, []inkpad.Sample{
		sample(cx+width*0.34, cy+amp*0.4, t, 0.8),
	})

	return strokes
}

func sample(x, y, t, pressure float64) inkpad.Sample {
	return inkpad.Sample{
		X:           x,
		Y:           y,
		Time:        t,
		Pressure:    math.Min(1, math.Max(0, pressure)),
		PointerType: inkpad.PointerPen,
	}
}
