// Package inkpad turns raw, timestamped pointer samples into a smooth,
// variable-width ink trace suitable for handwritten signatures.
//
// # Overview
//
// inkpad is the rendering and capture core of a signature pad. It consumes
// a stream of pointer samples (position, optional pressure, timestamp,
// device kind), stabilizes them, and strokes quadratic curve segments whose
// width follows one of three tool physics models: pen, pencil, and
// calligraphy brush. Captured strokes can be replayed frame by frame and
// exported as PNG, SVG, or PDF.
//
// # Quick Start
//
//	import "github.com/gogpu/inkpad"
//
//	// Create an engine with a 600x240 logical surface.
//	e := inkpad.NewEngine(600, 240)
//
//	// Feed pointer events.
//	e.BeginStroke(inkpad.Sample{X: 10, Y: 120, Time: 0, Pressure: inkpad.PressureUnknown})
//	e.ExtendStroke(inkpad.Sample{X: 40, Y: 100, Time: 16, Pressure: inkpad.PressureUnknown})
//	e.ExtendStroke(inkpad.Sample{X: 80, Y: 130, Time: 32, Pressure: inkpad.PressureUnknown})
//	e.EndStroke()
//
//	// Export.
//	f, _ := os.Create("signature.png")
//	defer f.Close()
//	e.EncodePNG(f)
//
// # Architecture
//
// The engine is organized as a pipeline:
//
//	pointer samples -> stabilizer -> stroke store -> curve renderer -> Surface
//
// The stabilizer low-pass filters incoming coordinates (the "streamline"
// setting). Filtered samples are what gets stored, so replay and vector
// export are reproducible from stored data alone. The curve renderer keeps a
// sliding three-sample window and emits one quadratic Segment per new
// sample, chained through midpoints so consecutive segments share tangents.
// Replay and export read only from the stroke store and never mutate it.
//
// # Coordinate System
//
// The engine operates entirely in logical (device-pixel-ratio normalized)
// coordinates, origin at the top-left, X right, Y down. The Surface adapter
// owns the logical-to-physical mapping; the bundled software surface scales
// by a configurable pixel ratio at construction.
//
// # Concurrency
//
// The engine is single-goroutine by contract: capture, replay stepping, and
// export must be driven from one goroutine, mirroring a UI event loop. The
// Replayer's Run helper drives stepping from its own goroutine and must not
// run concurrently with capture on the same engine.
//
// The host owns pointer capture: it must deliver each logical stroke as a
// contiguous, time-ordered down/move/up sequence even if the pointer leaves
// the surface boundary mid-stroke. That is the only ordering the engine
// relies on.
package inkpad
