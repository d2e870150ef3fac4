// Package interact turns mouse gestures over the plotting rect into intents
// for the shell: pan and zoom the time window, measure a span, mark the
// cursor, and set the zero and ground references.
package interact

import(
	"fmt"
	"strings"

	"github.com/skypies/flightplot/axis"
)

type Tool int

const(
	Pan Tool = iota
	Zoom
	Measure
	Zero
	Ground
)

func (t Tool)String() string {
	switch t {
	case Pan:     return "pan"
	case Zoom:    return "zoom"
	case Measure: return "measure"
	case Zero:    return "zero"
	case Ground:  return "ground"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

func ParseTool(s string) (Tool, error) {
	for t := Pan; t <= Ground; t++ {
		if strings.EqualFold(s, t.String()) { return t, nil }
	}
	return Pan, fmt.Errorf("unknown tool %q", s)
}

// A Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rect is the plotting rectangle, in pixels. Y grows downwards.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains is inclusive on all edges.
func (r Rect)Contains(p Point) bool {
	return r.ContainsX(p.X) && p.Y >= r.Top && p.Y <= r.Bottom
}
func (r Rect)ContainsX(x float64) bool { return x >= r.Left && x <= r.Right }

func (r Rect)Width() float64 { return r.Right - r.Left }
func (r Rect)Height() float64 { return r.Bottom - r.Top }

// Mapper is the time axis as currently laid out. It is asked afresh on every
// event, as pans and zooms move it between events.
type Mapper interface {
	PixelToCoord(px float64) float64
	Range() axis.Range
}

// Shell receives the intents. The controller never changes the window or the
// references itself.
type Shell interface {
	Tool() Tool

	OnWindowShift(delta float64)
	OnWindowReplace(r axis.Range)
	OnMeasure(start, end float64)
	OnCursorMark(t float64)
	OnCursorClear()
	OnSetZero(t float64)
	OnSetGround(t float64)

	Repaint()
}
