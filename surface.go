package inkpad

import (
	"image"
	"math"
)

// Surface receives ink segments from the engine. Implementations own the
// logical-to-physical coordinate mapping; the engine always speaks logical
// coordinates. Painting is append-only: a surface never needs to revisit
// previously painted pixels except on Clear.
type Surface interface {
	// DrawSegment paints one variable-width quadratic segment.
	DrawSegment(seg Segment)
	// Clear wipes the surface back to fully transparent.
	Clear()
}

// RasterSurface is a Surface whose current pixels can be snapshotted for
// raster export.
type RasterSurface interface {
	Surface
	// Snapshot returns the surface pixels at physical resolution.
	Snapshot() image.Image
}

// antialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth edges at standard DPI.
const antialiasWidth = 0.7

// maxFlattenSteps bounds the dab count for one segment so a pathological
// input sample cannot stall a frame.
const maxFlattenSteps = 512

// SoftwareSurface rasterizes segments into an in-memory pixmap. The pixmap
// is allocated at width*ratio x height*ratio physical pixels, so snapshots
// are device-pixel-ratio correct by construction.
//
// A segment is rendered by flattening its quadratic into dab positions and
// accumulating round-dab coverage into a per-segment mask, which is then
// composited once. Compositing per segment rather than per dab keeps
// semi-transparent inks (the pencil) at uniform opacity instead of
// darkening where dabs overlap.
type SoftwareSurface struct {
	pixmap *Pixmap
	ratio  float64
}

var _ RasterSurface = (*SoftwareSurface)(nil)

// NewSoftwareSurface creates a software surface with the given logical
// dimensions and device pixel ratio. Ratios <= 0 fall back to 1.
func NewSoftwareSurface(width, height int, pixelRatio float64) *SoftwareSurface {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	pw := int(math.Ceil(float64(width) * pixelRatio))
	ph := int(math.Ceil(float64(height) * pixelRatio))
	return &SoftwareSurface{
		pixmap: NewPixmap(pw, ph),
		ratio:  pixelRatio,
	}
}

// PixelRatio returns the physical pixels per logical unit.
func (s *SoftwareSurface) PixelRatio() float64 {
	return s.ratio
}

// Pixmap exposes the underlying pixel buffer.
func (s *SoftwareSurface) Pixmap() *Pixmap {
	return s.pixmap
}

// Clear wipes the surface back to fully transparent.
func (s *SoftwareSurface) Clear() {
	s.pixmap.Clear(Transparent)
}

// Snapshot returns the surface pixels at physical resolution.
func (s *SoftwareSurface) Snapshot() image.Image {
	return s.pixmap.ToImage()
}

// DrawSegment paints one variable-width quadratic segment.
func (s *SoftwareSurface) DrawSegment(seg Segment) {
	if seg.Width <= 0 || seg.Color.A <= 0 {
		return
	}

	q := QuadBez{
		P0: seg.P0.Mul(s.ratio),
		P1: seg.Ctrl.Mul(s.ratio),
		P2: seg.P2.Mul(s.ratio),
	}
	radius := seg.Width / 2 * s.ratio

	// Segment bounding box in physical pixels, padded for the dab radius
	// and the anti-aliasing fringe, clipped to the pixmap.
	pad := radius + antialiasWidth + 1
	x0 := int(math.Floor(min3(q.P0.X, q.P1.X, q.P2.X) - pad))
	y0 := int(math.Floor(min3(q.P0.Y, q.P1.Y, q.P2.Y) - pad))
	x1 := int(math.Ceil(max3(q.P0.X, q.P1.X, q.P2.X) + pad))
	y1 := int(math.Ceil(max3(q.P0.Y, q.P1.Y, q.P2.Y) + pad))
	x0 = maxInt(x0, 0)
	y0 = maxInt(y0, 0)
	x1 = minInt(x1, s.pixmap.Width())
	y1 = minInt(y1, s.pixmap.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// Dab spacing of half the radius keeps the envelope smooth; the
	// coverage max below erases any scalloping between dabs.
	spacing := math.Max(0.35, radius*0.5)
	steps := int(q.PolylineLength()/spacing) + 1
	if steps < 2 {
		steps = 2
	}
	if steps > maxFlattenSteps {
		steps = maxFlattenSteps
	}

	mw, mh := x1-x0, y1-y0
	mask := make([]float64, mw*mh)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.stampDisc(mask, x0, y0, mw, mh, q.Eval(t), radius)
	}

	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			cov := mask[my*mw+mx]
			if cov <= 0 {
				continue
			}
			s.pixmap.BlendPixel(x0+mx, y0+my, seg.Color.WithAlpha(seg.Color.A*cov))
		}
	}
}

// stampDisc accumulates a round dab's anti-aliased coverage into the mask,
// keeping the maximum per pixel.
func (s *SoftwareSurface) stampDisc(mask []float64, x0, y0, mw, mh int, c Point, radius float64) {
	reach := radius + antialiasWidth + 1
	dx0 := maxInt(int(math.Floor(c.X-reach))-x0, 0)
	dy0 := maxInt(int(math.Floor(c.Y-reach))-y0, 0)
	dx1 := minInt(int(math.Ceil(c.X+reach))-x0, mw-1)
	dy1 := minInt(int(math.Ceil(c.Y+reach))-y0, mh-1)

	for my := dy0; my <= dy1; my++ {
		for mx := dx0; mx <= dx1; mx++ {
			px := float64(x0+mx) + 0.5
			py := float64(y0+my) + 0.5
			cov := discCoverage(px, py, c.X, c.Y, radius)
			if cov > mask[my*mw+mx] {
				mask[my*mw+mx] = cov
			}
		}
	}
}

// discCoverage computes anti-aliased coverage for a filled disc using a
// signed distance and a Hermite smoothstep transition.
//
// sdf < -antialiasWidth => 1.0 (fully inside)
// sdf > +antialiasWidth => 0.0 (fully outside)
// Otherwise             => smooth transition
func discCoverage(px, py, cx, cy, radius float64) float64 {
	sdf := math.Hypot(px-cx, py-cy) - radius
	if sdf >= antialiasWidth {
		return 0
	}
	if sdf <= -antialiasWidth {
		return 1
	}
	t := (sdf + antialiasWidth) / (2 * antialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
