// Provides routines to render flight plots as PDFs.
package fpdf

// https://godoc.org/github.com/jung-kurt/gofpdf

import(
	"image/color"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/flightplot/interact"
)

// {{{ setDrawColor, setTextColor, setFillColor

func setDrawColor(pdf *gofpdf.Fpdf, c color.RGBA) { pdf.SetDrawColor(int(c.R), int(c.G), int(c.B)) }
func setTextColor(pdf *gofpdf.Fpdf, c color.RGBA) { pdf.SetTextColor(int(c.R), int(c.G), int(c.B)) }
func setFillColor(pdf *gofpdf.Fpdf, c color.RGBA) { pdf.SetFillColor(int(c.R), int(c.G), int(c.B)) }

func alpha(c color.RGBA) float64 { return float64(c.A) / 255.0 }

// }}}

// Painter draws overlay primitives onto a PDF page, clipped to a rect. Page
// millimetres stand in for pixels.
type Painter struct {
	*gofpdf.Fpdf
	Clip  interact.Rect
	Width float64 // line width, mm
}

func NewPainter(pdf *gofpdf.Fpdf, clip interact.Rect) *Painter {
	return &Painter{Fpdf: pdf, Clip: clip, Width: 0.2}
}

// Begin starts clipping to the rect; every Begin needs an End.
func (p *Painter)Begin() {
	p.ClipRect(p.Clip.Left, p.Clip.Top, p.Clip.Width(), p.Clip.Height(), false)
}
func (p *Painter)End() {
	p.ClipEnd()
	p.SetAlpha(1.0, "Normal")
}

func (p *Painter)Line(x1, y1, x2, y2 float64, c color.RGBA) {
	setDrawColor(p.Fpdf, c)
	p.SetAlpha(alpha(c), "Normal")
	p.SetLineWidth(p.Width)
	p.Fpdf.Line(x1, y1, x2, y2)
}

func (p *Painter)FillRect(x, y, w, h float64, c color.RGBA) {
	setFillColor(p.Fpdf, c)
	p.SetAlpha(alpha(c), "Normal")
	p.Rect(x, y, w, h, "F")
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
