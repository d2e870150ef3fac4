// Package overlay draws the interaction feedback on top of a finished plot:
// the guides and shaded band of a zoom or measure drag, or a crosshair.
package overlay

import(
	"image/color"
	"math"

	"github.com/skypies/flightplot/interact"
)

var(
	GuideColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	BandColor  = color.RGBA{181, 217, 42, 64}
)

// Painter is the drawing surface. Coordinates are in the same pixel space as
// the controller's rect.
type Painter interface {
	Line(x1, y1, x2, y2 float64, c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
}

// Draw paints the overlay for s. It only reads s.
func Draw(p Painter, s interact.Snapshot) {
	r := s.Rect

	// A drag always has a cursor (at least the press point), even once the
	// pointer has left.
	if d := s.Drag; d != nil && (d.Tool == interact.Zoom || d.Tool == interact.Measure) {
		p.Line(d.Anchor.X, r.Top, d.Anchor.X, r.Bottom, GuideColor)
		if r.ContainsX(s.Cursor.X) {
			p.Line(s.Cursor.X, r.Top, s.Cursor.X, r.Bottom, GuideColor)
		}
		x1 := clamp(math.Min(d.Anchor.X, s.Cursor.X), r.Left, r.Right)
		x2 := clamp(math.Max(d.Anchor.X, s.Cursor.X), r.Left, r.Right)
		if x2 > x1 {
			p.FillRect(x1, r.Top, x2-x1, r.Height(), BandColor)
		}
		return
	}

	if s.HasCursor && r.Contains(s.Cursor) {
		p.Line(s.Cursor.X, r.Top, s.Cursor.X, r.Bottom, GuideColor)
		p.Line(r.Left, s.Cursor.Y, r.Right, s.Cursor.Y, GuideColor)
	}
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
