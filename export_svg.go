package inkpad

import (
	"fmt"
	"io"
	"strings"
)

// EncodeSVG writes a vector rendition of the session, re-derived purely
// from stored stroke data and independent of what has been painted. Each
// stroke with at least two samples becomes one path: a move to the first
// sample followed by straight line segments, with one constant width and
// opacity per path. Strokes with fewer than two samples are skipped. An
// empty session encodes a valid empty document.
//
// The document is sized to the logical (DPR-normalized) surface dimensions.
func (e *Engine) EncodeSVG(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		e.width, e.height, e.width, e.height)

	for _, st := range e.strokes() {
		if st.Len() < 2 {
			continue
		}
		width, opacity := e.exportStyle(st.Options)

		var d strings.Builder
		fmt.Fprintf(&d, "M %s %s", coord(st.Samples[0].X), coord(st.Samples[0].Y))
		for _, s := range st.Samples[1:] {
			fmt.Fprintf(&d, " L %s %s", coord(s.X), coord(s.Y))
		}

		fmt.Fprintf(&b,
			`  <path d="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s" fill="none" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			d.String(), Hex(st.Options.Color).HexString(), coord(opacity), coord(width))
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// coord formats a coordinate or style value with two decimal places,
// trimming a trailing ".00" to keep documents compact.
func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
