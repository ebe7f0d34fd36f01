package inkpad

import "testing"

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{"pen", ToolPen, false},
		{"pencil", ToolPencil, false},
		{"calligraphy", ToolCalligraphy, false},
		{"marker", ToolPen, true},
		{"", ToolPen, true},
	}

	for _, tt := range tests {
		got, err := ParseTool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToolString(t *testing.T) {
	tests := []struct {
		tool Tool
		want string
	}{
		{ToolPen, "pen"},
		{ToolPencil, "pencil"},
		{ToolCalligraphy, "calligraphy"},
	}

	for _, tt := range tests {
		if got := tt.tool.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDrawingOptionsNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   DrawingOptions
		want DrawingOptions
	}{
		{
			"reversed widths swap",
			DrawingOptions{MinWidth: 4, MaxWidth: 1},
			DrawingOptions{MinWidth: 1, MaxWidth: 4},
		},
		{
			"streamline clamps high",
			DrawingOptions{MaxWidth: 1, Streamline: 1.5},
			DrawingOptions{MaxWidth: 1, Streamline: 1},
		},
		{
			"streamline clamps low",
			DrawingOptions{MaxWidth: 1, Streamline: -0.5},
			DrawingOptions{MaxWidth: 1, Streamline: 0},
		},
		{
			"smoothing clamps",
			DrawingOptions{MaxWidth: 1, Smoothing: 2},
			DrawingOptions{MaxWidth: 1, Smoothing: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.normalized(); got != tt.want {
				t.Errorf("normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultTuningMatchesStockConstants(t *testing.T) {
	tn := DefaultTuning()

	if tn.PenVelocityCap != 2.5 || tn.CalligraphyVelocityCap != 3.5 {
		t.Errorf("velocity caps = %v/%v, want 2.5/3.5", tn.PenVelocityCap, tn.CalligraphyVelocityCap)
	}
	if tn.PenBlend != 0.6 || tn.PencilBlend != 0.2 || tn.CalligraphyBlend != 0.6 {
		t.Errorf("blend factors = %v/%v/%v, want 0.6/0.2/0.6", tn.PenBlend, tn.PencilBlend, tn.CalligraphyBlend)
	}
	if tn.PenPressureBoost != 1.1 {
		t.Errorf("pen pressure boost = %v, want 1.1", tn.PenPressureBoost)
	}
}

func TestWithTuning(t *testing.T) {
	tn := DefaultTuning()
	tn.PencilAlpha = 0.4

	rec := &recordingSurface{}
	e := NewEngine(100, 100,
		WithSurface(rec),
		WithDrawingOptions(flatOpts(ToolPencil)),
		WithTuning(tn),
	)
	drawStroke(e, lineSamples(4))

	if len(rec.segments) == 0 {
		t.Fatal("no segments painted")
	}
	if got := rec.segments[0].Color.A; got != 0.4 {
		t.Errorf("segment alpha = %v, want tuned 0.4", got)
	}
}
