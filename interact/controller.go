package interact

import(
	"fmt"
	"math"

	"github.com/skypies/flightplot/axis"
)

// WheelScale is the wheel delta that rescales the window by a factor of e.
const WheelScale = 500.0

// {{{ State

// Drag is the gesture in progress. The tool is the one selected at press time.
type Drag struct {
	Tool   Tool
	Anchor Point
}

// State is either idle (Drag == nil) or dragging.
type State struct {
	Drag *Drag
}

func (s State)Idle() bool { return s.Drag == nil }
func (s State)Dragging() bool { return s.Drag != nil }

func (s State)String() string {
	if s.Drag == nil { return "idle" }
	return fmt.Sprintf("dragging(%s, %.0f,%.0f)", s.Drag.Tool, s.Drag.Anchor.X, s.Drag.Anchor.Y)
}

// }}}
// {{{ Snapshot

// Snapshot is what the overlay needs to draw: the drag, the cursor and the rect.
// Cursor is the last known pointer position, kept after a leave so a drag can
// still be drawn; HasCursor is false while the pointer is away.
type Snapshot struct {
	State
	Cursor    Point
	HasCursor bool
	Rect      Rect
}

// }}}

// A Controller holds the drag state and the last cursor position. All calls
// must come from the one goroutine that delivers the host's events.
type Controller struct {
	shell  Shell
	mapper Mapper
	rect   Rect

	state     State
	cursor    Point
	hasCursor bool
}

func NewController(s Shell, m Mapper, r Rect) *Controller {
	return &Controller{shell: s, mapper: m, rect: r}
}

func (c *Controller)SetRect(r Rect) { c.rect = r }
func (c *Controller)Rect() Rect { return c.rect }
func (c *Controller)State() State { return c.state }

// Cursor returns the last pointer position, false if there has been none.
func (c *Controller)Cursor() (Point, bool) { return c.cursor, c.hasCursor }

func (c *Controller)Snapshot() Snapshot {
	return Snapshot{State: c.state, Cursor: c.cursor, HasCursor: c.hasCursor, Rect: c.rect}
}

func (c *Controller)time(px float64) float64 { return c.mapper.PixelToCoord(px) }

// {{{ c.Press

// Press starts a drag with the current tool if p is inside the rect. It
// returns false otherwise, and the host should handle the press itself.
func (c *Controller)Press(p Point) bool {
	c.cursor, c.hasCursor = p, true
	if !c.rect.Contains(p) { return false }

	c.state = State{Drag: &Drag{Tool: c.shell.Tool(), Anchor: p}}
	c.shell.Repaint()
	return true
}

// }}}
// {{{ c.Move

func (c *Controller)Move(p Point) {
	c.cursor, c.hasCursor = p, true
	d := c.state.Drag

	if d != nil && d.Tool == Pan {
		c.shell.OnWindowShift(c.time(d.Anchor.X) - c.time(p.X))
		d.Anchor = p
	}

	if c.rect.Contains(p) {
		if d != nil && d.Tool == Measure {
			c.shell.OnMeasure(c.time(d.Anchor.X), c.time(p.X))
		} else {
			c.shell.OnCursorMark(c.time(p.X))
		}
	} else {
		c.shell.OnCursorClear()
	}

	c.shell.Repaint()
}

// }}}
// {{{ c.Release

// Release ends the drag, if there is one. It returns whether there was.
func (c *Controller)Release(p Point) bool {
	c.cursor, c.hasCursor = p, true
	d := c.state.Drag
	if d == nil { return false }

	switch d.Tool {
	case Zoom:
		t0, t1 := c.time(d.Anchor.X), c.time(p.X)
		c.shell.OnWindowReplace(axis.Range{Lower: math.Min(t0, t1), Upper: math.Max(t0, t1)})
	case Zero:
		c.shell.OnSetZero(c.time(p.X))
	case Ground:
		c.shell.OnSetGround(c.time(p.X))
	}

	c.state = State{}
	c.shell.Repaint()
	return true
}

// }}}
// {{{ c.Wheel

// Wheel zooms the window about the time under p, by exp(-deltaY/WheelScale).
// A positive delta zooms in. Returns false (and does nothing) outside the rect.
func (c *Controller)Wheel(p Point, deltaY float64) bool {
	if !c.rect.Contains(p) { return false }

	x := c.time(p.X)
	f := math.Exp(-deltaY / WheelScale)
	c.shell.OnWindowReplace(c.mapper.Range().ScaleAbout(x, f))
	return true
}

// }}}
// {{{ c.Leave

// Leave clears the cursor mark. A drag in progress survives until Release, and
// the last cursor position is kept for it.
func (c *Controller)Leave() {
	c.hasCursor = false
	c.shell.OnCursorClear()
	c.shell.Repaint()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
