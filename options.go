package inkpad

import "fmt"

// Tool selects the ink physics model applied to a stroke.
type Tool int

const (
	// ToolPen maps pressure (stylus) or velocity (mouse/touch) to width.
	ToolPen Tool = iota
	// ToolPencil draws a thin, constant-width, semi-transparent line.
	ToolPencil
	// ToolCalligraphy exaggerates the contrast between slow/thick and
	// fast/thin strokes.
	ToolCalligraphy
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolCalligraphy:
		return "calligraphy"
	default:
		return "pen"
	}
}

// ParseTool converts a tool name into a Tool.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return ToolPen, nil
	case "pencil":
		return ToolPencil, nil
	case "calligraphy":
		return ToolCalligraphy, nil
	default:
		return ToolPen, fmt.Errorf("inkpad: unknown tool %q", s)
	}
}

// DrawingOptions describes how strokes are inked. The engine snapshots the
// current options at BeginStroke and applies that snapshot for the whole
// stroke, so options may change freely between strokes.
type DrawingOptions struct {
	// Color is the ink color as a hex string ("#rrggbb").
	Color string
	// MinWidth and MaxWidth bound the variable stroke width in logical
	// pixels. MinWidth must not exceed MaxWidth; reversed values are
	// swapped.
	MinWidth float64
	MaxWidth float64
	// Smoothing in [0, 1] is reserved for future curve smoothing and is
	// currently advisory only.
	Smoothing float64
	// Streamline in [0, 1] is the stabilization strength: how far the
	// accepted position lags behind raw input to suppress jitter.
	Streamline float64
	// Tool selects the width model.
	Tool Tool
}

// DefaultDrawingOptions returns the options used by a fresh engine.
func DefaultDrawingOptions() DrawingOptions {
	return DrawingOptions{
		Color:      "#16213e",
		MinWidth:   1,
		MaxWidth:   4,
		Smoothing:  0.5,
		Streamline: 0.5,
		Tool:       ToolPen,
	}
}

// normalized returns a copy with widths ordered and fractions clamped.
func (o DrawingOptions) normalized() DrawingOptions {
	if o.MinWidth > o.MaxWidth {
		o.MinWidth, o.MaxWidth = o.MaxWidth, o.MinWidth
	}
	o.Smoothing = clamp01(o.Smoothing)
	o.Streamline = clamp01(o.Streamline)
	return o
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Tuning holds the empirically tuned width-model constants. They are
// configuration defaults, not structural invariants; override them with
// WithTuning when a different feel is wanted.
type Tuning struct {
	// PenVelocityCap is the velocity (px/ms) at which the pen reaches
	// MinWidth.
	PenVelocityCap float64
	// PenPressureBoost scales the pressure-driven pen width.
	PenPressureBoost float64
	// PenBlend is the exponential width memory factor for the pen.
	PenBlend float64

	// PencilWidthScale of MaxWidth gives the pencil's constant width.
	PencilWidthScale float64
	// PencilWidthFloor is the minimum pencil width.
	PencilWidthFloor float64
	// PencilAlpha is the pencil's fixed ink opacity.
	PencilAlpha float64
	// PencilBlend is the pencil's width memory factor; lower means a
	// scratchier line.
	PencilBlend float64

	// CalligraphyVelocityCap is the velocity (px/ms) at which the brush
	// reaches its thinnest width.
	CalligraphyVelocityCap float64
	// CalligraphyMaxScale of MaxWidth is the brush's thickest width.
	CalligraphyMaxScale float64
	// CalligraphyMinScale of MinWidth is the brush's thinnest width.
	CalligraphyMinScale float64
	// CalligraphyBlend is the brush's width memory factor.
	CalligraphyBlend float64
}

// DefaultTuning returns the stock width-model constants.
func DefaultTuning() Tuning {
	return Tuning{
		PenVelocityCap:   2.5,
		PenPressureBoost: 1.1,
		PenBlend:         0.6,

		PencilWidthScale: 0.4,
		PencilWidthFloor: 0.5,
		PencilAlpha:      0.7,
		PencilBlend:      0.2,

		CalligraphyVelocityCap: 3.5,
		CalligraphyMaxScale:    1.5,
		CalligraphyMinScale:    0.5,
		CalligraphyBlend:       0.6,
	}
}

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default software surface at 1:1 pixel ratio
//	e := inkpad.NewEngine(600, 240)
//
//	// HiDPI software surface
//	e := inkpad.NewEngine(600, 240, inkpad.WithPixelRatio(2))
//
//	// Custom surface (dependency injection)
//	e := inkpad.NewEngine(600, 240, inkpad.WithSurface(mySurface))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	surface    Surface
	detached   bool
	pixelRatio float64
	drawing    DrawingOptions
	tuning     Tuning
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		pixelRatio: 1,
		drawing:    DefaultDrawingOptions(),
		tuning:     DefaultTuning(),
	}
}

// WithSurface sets a custom rendering surface for the Engine.
// Use this for dependency injection of GPU or recording surfaces.
func WithSurface(s Surface) EngineOption {
	return func(o *engineOptions) {
		o.surface = s
	}
}

// WithoutSurface creates the engine detached: capture operations are no-ops
// until AttachSurface is called. This models a drawing surface that has not
// been mounted yet.
func WithoutSurface() EngineOption {
	return func(o *engineOptions) {
		o.detached = true
	}
}

// WithPixelRatio sets the device pixel ratio of the default software
// surface. It has no effect when a custom surface is injected.
func WithPixelRatio(ratio float64) EngineOption {
	return func(o *engineOptions) {
		o.pixelRatio = ratio
	}
}

// WithDrawingOptions sets the initial drawing options.
func WithDrawingOptions(d DrawingOptions) EngineOption {
	return func(o *engineOptions) {
		o.drawing = d
	}
}

// WithTuning overrides the width-model constants.
func WithTuning(t Tuning) EngineOption {
	return func(o *engineOptions) {
		o.tuning = t
	}
}
