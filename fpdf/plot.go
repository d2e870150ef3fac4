package fpdf

import(
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/util/date"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/axis"
	"github.com/skypies/flightplot/interact"
	"github.com/skypies/flightplot/metric"
	"github.com/skypies/flightplot/overlay"
)

var tracer = otel.Tracer("github.com/skypies/flightplot/fpdf")

// Page layout, in mm, for a landscape Letter page.
var(
	PageW, PageH = 279.4, 215.9
	MarginLeft   = 12.0
	MarginRight  = 12.0
	MarginTop    = 28.0
	MarginBottom = 26.0
)

// PlotRect is the plotting rect when nAxes value axes are stacked on its left.
func PlotRect(nAxes int) interact.Rect {
	return interact.Rect{
		Left:   MarginLeft + float64(nAxes)*AxisWidth,
		Top:    MarginTop,
		Right:  PageW - MarginRight,
		Bottom: PageH - MarginBottom,
	}
}

// Plot renders one view of a track: the window along X, and a curve for each
// axis in the table, drawn against that axis's range.
type Plot struct {
	Track   fp.Track
	X       *metric.Metric
	Units   fp.Units
	Window  axis.Range
	Axes    *axis.Table

	Overlay *interact.Snapshot // optional
	Start   time.Time          // wall clock time at X=0, for the caption
	Caption string

	LineThickness float64

	*gofpdf.Fpdf    // embedded
}

// {{{ p.Rect, PixelToCoord, Range

func (p *Plot)Rect() interact.Rect { return PlotRect(p.Axes.Len()) }

func (p *Plot)xScale() axis.Scale {
	r := p.Rect()
	return axis.Scale{Range: p.Window, Low: r.Left, High: r.Right}
}

// PixelToCoord maps a page position (mm) to an X value, so a Plot can serve as
// the time axis for an interact.Controller.
func (p *Plot)PixelToCoord(px float64) float64 { return p.xScale().PixelToCoord(px) }
func (p *Plot)CoordToPixel(x float64) float64 { return p.xScale().CoordToPixel(x) }
func (p *Plot)Range() axis.Range { return p.Window }

// }}}
// {{{ p.Init

func (p *Plot)Init() {
	p.Fpdf = gofpdf.New("L", "mm", "Letter", "")
	p.AddPage()
	p.SetFont("Arial", "", 10)

	if p.LineThickness == 0.0 { p.LineThickness = 0.35 }
}

// }}}
// {{{ p.grid

func (p *Plot)grid(a *axis.Axis) Grid {
	r := p.Rect()
	return Grid{
		Fpdf: p.Fpdf,
		OffsetU: r.Left,
		OffsetV: r.Top,
		W: r.Width(),
		H: r.Height(),
		X: p.Window,
		Y: a.Range,
		LineColor: a.Metric.Color(),
	}
}

// }}}

// {{{ p.DrawFrame

func (p *Plot)DrawFrame() {
	r := p.Rect()
	frame := Grid{Fpdf: p.Fpdf, OffsetU: r.Left, OffsetV: r.Top, W: r.Width(), H: r.Height(),
		X: p.Window}
	frame.DrawXGridlines("%g")

	for _,a := range p.Axes.Axes() {
		g := p.grid(a)
		if !a.Ranged() { g.Y = axis.Range{} }
		g.DrawYAxis(a.Position, a.Metric.Title(p.Units))
	}

	frame.DrawFrame()

	p.SetFont("Arial", "", 9)
	p.SetTextColor(0, 0, 0)
	p.SetXY(r.Left, r.Bottom+7)
	p.CellFormat(r.Width(), 4, p.X.Title(p.Units), "", 0, "C", false, 0, "")
}

// }}}
// {{{ p.DrawCurves

// DrawCurves draws every ranged axis's metric over the window, clipped to the
// plotting rect. NaN values break the curve.
func (p *Plot)DrawCurves() {
	r := p.Rect()
	p.ClipRect(r.Left, r.Top, r.Width(), r.Height(), false)
	defer p.ClipEnd()

	xs := make([]float64, len(p.Track))
	ys := make([]float64, len(p.Track))
	for i,dp := range p.Track {
		xs[i] = p.X.Value(dp, p.Units)
	}

	p.SetLineWidth(p.LineThickness)
	for _,a := range p.Axes.Axes() {
		if !a.Ranged() { continue }
		for i,dp := range p.Track {
			ys[i] = a.Metric.Value(dp, p.Units)
		}
		p.grid(a).Polyline(xs, ys)
	}
}

// }}}
// {{{ p.DrawOverlay

func (p *Plot)DrawOverlay() {
	if p.Overlay == nil { return }
	pt := NewPainter(p.Fpdf, p.Rect())
	pt.Begin()
	overlay.Draw(pt, *p.Overlay)
	pt.End()
}

// }}}
// {{{ p.DrawCaption

func (p *Plot)DrawCaption() {
	title := fmt.Sprintf("* %s: %s\n", p.X.Name(), p.Window)
	if p.X.Key() == metric.KeyTime {
		span := time.Duration(p.Window.Size() * float64(time.Second))
		title = fmt.Sprintf("* Window: %.1fs to %.1fs (%s)\n", p.Window.Lower, p.Window.Upper,
			date.RoundDuration(span))
	}
	if !p.Start.IsZero() {
		title += fmt.Sprintf("* Zero: %s\n", p.Start.UTC().Format("2006/01/02 15:04:05.000 MST"))
	}
	title += p.Caption

	p.SetFont("Arial", "", 10)
	p.SetTextColor(0x50, 0x70, 0xc0)
	p.SetXY(10, 8)
	p.MultiCell(0, 4, title, "", "", false)
	p.SetTextColor(0, 0, 0)
}

// }}}

// {{{ p.Render

func (p *Plot)Render() {
	if p.Fpdf == nil { p.Init() }
	p.DrawCaption()
	p.DrawFrame()
	p.DrawCurves()
	p.DrawOverlay()
}

// }}}
// {{{ p.Output

// Output renders the plot and writes the PDF to w.
func (p *Plot)Output(ctx context.Context, w io.Writer) error {
	_,span := tracer.Start(ctx, "fpdf.Output", trace.WithAttributes(
		attribute.Int("plot.points", len(p.Track)),
		attribute.Int("plot.axes", p.Axes.Len()),
		attribute.String("plot.x", p.X.Key()),
	))
	defer span.End()

	p.Render()
	if err := p.Fpdf.Output(w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("fpdf: writing plot: %w", err)
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
