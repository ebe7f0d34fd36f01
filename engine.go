package inkpad

import "io"

// Pad is the imperative control surface a host UI needs from the engine:
// enough to wire clear/replay/export/empty-check buttons without exposing
// the capture pipeline.
type Pad interface {
	Clear()
	IsEmpty() bool
	Replay() *Replayer
	Export(w io.Writer, f Format) error
}

var _ Pad = (*Engine)(nil)

// Engine is the signature-pad core: it owns the stroke store and session
// state, stabilizes and records incoming samples, and paints incrementally
// onto its Surface. All methods must be called from a single goroutine.
//
// During capture the engine holds at most one active stroke. Committing
// (EndStroke) moves the active stroke into the completed list; its samples
// are never aliased afterward.
type Engine struct {
	width, height int // logical dimensions
	surface       Surface
	opts          DrawingOptions // current options, snapshotted per stroke
	tuning        Tuning

	completed []*Stroke
	active    *Stroke
	drawing   bool
	rend      strokeRenderer

	replayer *Replayer
}

// NewEngine creates an engine with a logical width x height drawing area.
// Without options it renders onto a software raster surface at 1:1 pixel
// ratio.
func NewEngine(width, height int, opts ...EngineOption) *Engine {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil && !options.detached {
		surface = NewSoftwareSurface(width, height, options.pixelRatio)
	}

	Logger().Info("inkpad: engine created",
		"width", width, "height", height, "detached", surface == nil)

	return &Engine{
		width:   width,
		height:  height,
		surface: surface,
		opts:    options.drawing,
		tuning:  options.tuning,
	}
}

// Size returns the logical dimensions of the drawing area.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

// AttachSurface mounts a rendering surface. Capture operations are no-ops
// while no surface is attached.
func (e *Engine) AttachSurface(s Surface) {
	e.surface = s
}

// SetOptions replaces the current drawing options. The change takes effect
// at the next BeginStroke; the stroke in progress keeps its snapshot.
func (e *Engine) SetOptions(o DrawingOptions) {
	e.opts = o
}

// Options returns the current drawing options.
func (e *Engine) Options() DrawingOptions {
	return e.opts
}

// BeginStroke starts a new stroke at the pointer-down sample. A stroke
// already in progress is committed first; an in-flight replay is cancelled.
func (e *Engine) BeginStroke(s Sample) {
	if e.surface == nil {
		Logger().Warn("inkpad: BeginStroke without a surface, dropped")
		return
	}
	e.cancelReplay()
	if e.drawing {
		e.EndStroke()
	}

	opts := e.opts.normalized()
	e.active = newStroke(opts)
	e.active.Samples = append(e.active.Samples, s)
	e.rend = newStrokeRenderer(opts, e.tuning, s)
	e.drawing = true

	Logger().Debug("inkpad: stroke begun",
		"stroke", e.active.ID, "tool", opts.Tool.String())
}

// ExtendStroke stabilizes a pointer-move sample, appends it to the active
// stroke, and, once three samples are buffered, paints the newest segment.
// Called without an active stroke it is a no-op.
func (e *Engine) ExtendStroke(raw Sample) {
	if e.surface == nil || !e.drawing || e.active == nil {
		return
	}

	s := raw
	if prev, ok := e.active.last(); ok {
		s = stabilize(prev, raw, e.active.Options)
	}
	e.active.Samples = append(e.active.Samples, s)

	n := len(e.active.Samples)
	if n < 3 {
		return // buffered, nothing to paint yet
	}
	seg := e.rend.segment(e.active.Samples[n-3], e.active.Samples[n-2], e.active.Samples[n-1])
	e.surface.DrawSegment(seg)
}

// EndStroke commits the active stroke into the completed list and discards
// the per-stroke render memory. Degenerate strokes (fewer than 3 samples)
// commit too; they simply rendered nothing.
func (e *Engine) EndStroke() {
	if !e.drawing {
		return
	}
	if e.active.Len() > 0 {
		e.completed = append(e.completed, e.active)
		Logger().Debug("inkpad: stroke committed",
			"stroke", e.active.ID, "samples", e.active.Len())
	}
	e.active = nil
	e.drawing = false
	e.rend = strokeRenderer{}
}

// Clear empties the stroke store, wipes the surface, and cancels any
// in-flight replay. Clearing an already-empty session is a no-op.
func (e *Engine) Clear() {
	e.cancelReplay()
	e.completed = nil
	e.active = nil
	e.drawing = false
	e.rend = strokeRenderer{}
	if e.surface != nil {
		e.surface.Clear()
	}
}

// IsEmpty reports whether no strokes exist, completed or in progress.
func (e *Engine) IsEmpty() bool {
	return len(e.completed) == 0 && e.active.Len() == 0
}

// StrokeCount returns the number of committed strokes.
func (e *Engine) StrokeCount() int {
	return len(e.completed)
}

// strokes returns the store contents in order: completed strokes followed
// by the in-progress stroke, if any. Exporters read this; they never
// mutate it.
func (e *Engine) strokes() []*Stroke {
	out := e.completed
	if e.active.Len() > 0 {
		out = append(out[:len(out):len(out)], e.active)
	}
	return out
}

// cancelReplay stops the in-flight replayer, if any, before it paints
// another frame.
func (e *Engine) cancelReplay() {
	if e.replayer != nil {
		e.replayer.Cancel()
		e.replayer = nil
	}
}
