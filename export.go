package inkpad

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Format names an export encoding.
type Format string

const (
	// FormatPNG is the lossless raster snapshot of the rendered surface.
	FormatPNG Format = "png"
	// FormatSVG is the vector path description re-derived from stored
	// strokes.
	FormatSVG Format = "svg"
	// FormatPDF is a single-page document using the same simplified
	// stroke model as the SVG export.
	FormatPDF Format = "pdf"
)

// ParseFormat converts a format name ("png", "svg", "pdf") into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("inkpad: unknown export format %q", s)
	}
}

// ErrNoRasterSurface is returned by raster exports when the engine's
// surface cannot be snapshotted (detached engines, non-raster surfaces).
var ErrNoRasterSurface = errors.New("inkpad: surface does not support raster export")

// Export writes the session in the requested format.
func (e *Engine) Export(w io.Writer, f Format) error {
	switch f {
	case FormatPNG:
		return e.EncodePNG(w)
	case FormatSVG:
		return e.EncodeSVG(w)
	case FormatPDF:
		return e.EncodePDF(w)
	default:
		return fmt.Errorf("inkpad: unknown export format %q", f)
	}
}

// EncodePNG writes a lossless snapshot of the rendered surface. The
// snapshot is taken at the surface's physical resolution, so it is
// device-pixel-ratio correct by construction. An empty session encodes a
// fully transparent image.
func (e *Engine) EncodePNG(w io.Writer) error {
	rs, ok := e.surface.(RasterSurface)
	if !ok {
		return ErrNoRasterSurface
	}
	return png.Encode(w, rs.Snapshot())
}

// EncodePNGScaled resamples the surface snapshot to exactly width x height
// pixels with Catmull-Rom interpolation and writes it as PNG. Useful for
// embedding signatures into fixed-size document fields.
func (e *Engine) EncodePNGScaled(w io.Writer, width, height int) error {
	rs, ok := e.surface.(RasterSurface)
	if !ok {
		return ErrNoRasterSurface
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("inkpad: invalid scaled export size %dx%d", width, height)
	}
	src := rs.Snapshot()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return png.Encode(w, dst)
}

// exportStyle returns the constant width and opacity a stroke gets in the
// simplified vector exports (SVG, PDF). The live raster rendering is
// variable-width; the vector exports deliberately trade that fidelity for
// maximal viewer compatibility.
func (e *Engine) exportStyle(opts DrawingOptions) (width, opacity float64) {
	if opts.Tool == ToolPencil {
		return opts.MaxWidth * 0.5, e.tuning.PencilAlpha
	}
	return opts.MaxWidth, 1
}
