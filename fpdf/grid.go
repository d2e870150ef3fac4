package fpdf

import(
	"fmt"
	"image/color"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/flightplot/axis"
)

// Describes a grid we're going to plot over, and where it sits on the page. All
// grids on one plot share the same page rect and X range; each visible metric
// gets its own Y range.
type Grid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the grid will be drawn over (labels go outside of this)
	OffsetU     float64 // top-left corner, in PDF coords (mm)
	OffsetV     float64
	W,H         float64 // width and height of the grid, in PDF units (mm)

	// How (x,y) vals are mapped into (u,v) vals
	X,Y         axis.Range

	LineColor   color.RGBA
}

// {{{ g.XScale, YScale, U, V, UV

func (g Grid)XScale() axis.Scale {
	return axis.Scale{Range: g.X, Low: g.OffsetU, High: g.OffsetU + g.W}
}
func (g Grid)YScale() axis.Scale {
	return axis.Scale{Range: g.Y, Low: g.OffsetV, High: g.OffsetV + g.H, Inverted: true}
}

// the bool is whether the coord is out-of-bounds for the grid.
func (g Grid)U(x float64) (float64, bool) { return g.XScale().CoordToPixel(x), !g.X.Contains(x) }
func (g Grid)V(y float64) (float64, bool) { return g.YScale().CoordToPixel(y), !g.Y.Contains(y) }

func (g Grid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := g.U(x)
	v,oobV := g.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ g.Polyline

// Polyline strokes the points (xs[i], ys[i]) in the grid's colour as runs of
// connected segments. A NaN y ends a run; so does a segment lying wholly
// outside the X range. Points are in gridspace; the page clip (if any) trims
// what spills over the edge. Returns how many segments were drawn.
func (g Grid)Polyline(xs, ys []float64) int {
	visible := func(i int) bool { // the segment from i-1 to i
		return math.Max(xs[i-1], xs[i]) >= g.X.Lower && math.Min(xs[i-1], xs[i]) <= g.X.Upper
	}

	n, inRun := 0, false
	for i := range xs {
		if math.IsNaN(ys[i]) {
			inRun = false
			continue
		}
		if inRun && visible(i) {
			u,v,_ := g.UV(xs[i], ys[i])
			g.Fpdf.LineTo(u,v)
			n++
			continue
		}
		inRun = false
		if i+1 < len(xs) && !math.IsNaN(ys[i+1]) && visible(i+1) {
			u,v,_ := g.UV(xs[i], ys[i])
			g.Fpdf.MoveTo(u,v)
			inRun = true
		}
	}

	if n > 0 {
		setDrawColor(g.Fpdf, g.LineColor)
		g.DrawPath("D")
	}
	return n
}

// }}}

// {{{ g.DrawFrame

func (g Grid)DrawFrame() {
	g.SetDrawColor(0x00, 0x00, 0x00)
	g.SetLineWidth(0.3)
	g.Rect(g.OffsetU, g.OffsetV, g.W, g.H, "D")
}

// }}}
// {{{ g.DrawXGridlines

// DrawXGridlines draws vertical gridlines, with tick labels under the grid.
func (g Grid)DrawXGridlines(tickFmt string) {
	g.SetFont("Arial", "", 8)
	g.SetLineWidth(0.03)
	g.SetDrawColor(0xe0, 0xe0, 0xe0)
	g.SetTextColor(0, 0, 0)

	for _,x := range Ticks(g.X, 8) {
		u,_ := g.U(x)
		g.Fpdf.Line(u, g.OffsetV, u, g.OffsetV+g.H)

		g.SetXY(u-10, g.OffsetV+g.H+1)
		g.CellFormat(20, 4, fmt.Sprintf(tickFmt, x), "", 0, "C", false, 0, "")
	}
}

// }}}
// {{{ g.DrawYAxis

// AxisWidth is the page width given to each stacked value axis.
const AxisWidth = 18.0

// DrawYAxis draws this grid's Y range as a labelled vertical axis at stacking
// position pos, counting leftwards from the grid's left edge. Only the
// innermost axis draws horizontal gridlines.
func (g Grid)DrawYAxis(pos int, title string) {
	u := g.OffsetU - float64(pos)*AxisWidth
	ticks := Ticks(g.Y, 6)

	if pos == 0 {
		g.SetLineWidth(0.03)
		g.SetDrawColor(0xe0, 0xe0, 0xe0)
		for _,y := range ticks {
			v,_ := g.V(y)
			g.Fpdf.Line(g.OffsetU, v, g.OffsetU+g.W, v)
		}
	}

	setDrawColor(g.Fpdf, g.LineColor)
	setTextColor(g.Fpdf, g.LineColor)
	g.SetLineWidth(0.2)
	g.Fpdf.Line(u, g.OffsetV, u, g.OffsetV+g.H)

	g.SetFont("Arial", "", 7)
	for _,y := range ticks {
		v,_ := g.V(y)
		g.Fpdf.Line(u-1, v, u, v)
		g.SetXY(u-AxisWidth+2, v-2)
		g.CellFormat(AxisWidth-3.5, 4, tickLabel(y), "", 0, "R", false, 0, "")
	}

	// Axis title, rotated to run up the page
	g.TransformBegin()
	g.TransformRotate(90, u-AxisWidth+2, g.OffsetV+g.H)
	g.SetXY(u-AxisWidth+2, g.OffsetV+g.H)
	g.CellFormat(g.H, 3, title, "", 0, "C", false, 0, "")
	g.TransformEnd()

	g.SetTextColor(0, 0, 0)
}

// }}}

// {{{ Ticks

// Ticks returns round-numbered tick positions within r, about n of them; the
// step is 1, 2 or 5 times a power of ten.
func Ticks(r axis.Range, n int) []float64 {
	if !r.Valid() || n < 1 { return nil }

	raw := r.Size() / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _,m := range []float64{1, 2, 5, 10} {
		step = m * mag
		if step >= raw { break }
	}

	ticks := []float64{}
	for i := math.Ceil(r.Lower/step); i*step <= r.Upper; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

func tickLabel(v float64) string {
	if v == 0 { return "0" }
	if v == math.Trunc(v) && math.Abs(v) < 1e7 { return fmt.Sprintf("%.0f", v) }
	return fmt.Sprintf("%.3g", v)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
