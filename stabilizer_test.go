package inkpad

import (
	"math"
	"testing"
)

func TestStabilize(t *testing.T) {
	prev := Sample{X: 0, Y: 0, Time: 0}
	raw := Sample{X: 10, Y: 20, Pressure: 0.9, Time: 16, PointerType: PointerPen}

	tests := []struct {
		name       string
		streamline float64
		tool       Tool
		wantX      float64
		wantY      float64
	}{
		{"zero streamline passes through", 0, ToolPen, 10, 20},
		{"half streamline lags halfway", 0.5, ToolPen, 5, 10},
		{"full streamline freezes position", 1, ToolPen, 0, 0},
		{"pencil halves the streamline", 0.5, ToolPencil, 7.5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DrawingOptions{Streamline: tt.streamline, Tool: tt.tool}
			got := stabilize(prev, raw, opts)

			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
			// Time, pressure, and pointer type must pass through unmodified.
			if got.Time != raw.Time || got.Pressure != raw.Pressure || got.PointerType != raw.PointerType {
				t.Errorf("non-position fields modified: %+v", got)
			}
		})
	}
}
