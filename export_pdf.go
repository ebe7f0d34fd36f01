package inkpad

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// EncodePDF writes the session as a single-page PDF sized to the logical
// surface dimensions (one point per logical pixel). Strokes use the same
// simplified model as the SVG export: straight line segments between stored
// samples with one constant width and opacity per stroke. An empty session
// yields a valid blank page.
func (e *Engine) EncodePDF(w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(e.width), Ht: float64(e.height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, st := range e.strokes() {
		if st.Len() < 2 {
			continue
		}
		width, opacity := e.exportStyle(st.Options)
		ink := Hex(st.Options.Color)

		pdf.SetDrawColor(
			int(clamp255(ink.R*255)),
			int(clamp255(ink.G*255)),
			int(clamp255(ink.B*255)))
		pdf.SetLineWidth(width)
		pdf.SetAlpha(opacity, "Normal")

		pdf.MoveTo(st.Samples[0].X, st.Samples[0].Y)
		for _, s := range st.Samples[1:] {
			pdf.LineTo(s.X, s.Y)
		}
		pdf.DrawPath("D")
	}

	return pdf.Output(w)
}
