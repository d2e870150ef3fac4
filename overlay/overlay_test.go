package overlay

// go test -v github.com/skypies/flightplot/overlay

import(
	"fmt"
	"image/color"
	"testing"

	"github.com/skypies/flightplot/interact"
)

type recording []string

func (r *recording)Line(x1, y1, x2, y2 float64, c color.RGBA) {
	*r = append(*r, fmt.Sprintf("line %g,%g %g,%g %v", x1, y1, x2, y2, c))
}
func (r *recording)FillRect(x, y, w, h float64, c color.RGBA) {
	*r = append(*r, fmt.Sprintf("fill %g,%g %gx%g %v", x, y, w, h, c))
}

var rect = interact.Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}

func drag(tool interact.Tool, ax float64) interact.State {
	return interact.State{Drag: &interact.Drag{Tool: tool, Anchor: interact.Point{X: ax, Y: 40}}}
}

func TestDraw(t *testing.T) {
	black := fmt.Sprintf("%v", GuideColor)
	band := fmt.Sprintf("%v", BandColor)

	tests := []struct{
		Name   string
		State  interact.State
		Cursor *interact.Point
		Want   []string
	}{
		{"nothing", interact.State{}, nil, nil},
		{"outside", interact.State{}, &interact.Point{X: 200, Y: 40}, nil},
		{"crosshair", interact.State{}, &interact.Point{X: 50, Y: 40}, []string{
			"line 50,20 50,70 " + black,
			"line 10,40 110,40 " + black,
		}},
		{"zoom", drag(interact.Zoom, 30), &interact.Point{X: 80, Y: 60}, []string{
			"line 30,20 30,70 " + black,
			"line 80,20 80,70 " + black,
			"fill 30,20 50x50 " + band,
		}},
		{"measure leftwards", drag(interact.Measure, 80), &interact.Point{X: 30, Y: 60}, []string{
			"line 80,20 80,70 " + black,
			"line 30,20 30,70 " + black,
			"fill 30,20 50x50 " + band,
		}},
		{"measure past the edge", drag(interact.Measure, 80), &interact.Point{X: 150, Y: 60}, []string{
			"line 80,20 80,70 " + black,
			"fill 80,20 30x50 " + band,
		}},
		{"pan drag shows crosshair", drag(interact.Pan, 30), &interact.Point{X: 50, Y: 40}, []string{
			"line 50,20 50,70 " + black,
			"line 10,40 110,40 " + black,
		}},
	}

	for _,test := range tests {
		s := interact.Snapshot{State: test.State, Rect: rect}
		if test.Cursor != nil {
			s.Cursor, s.HasCursor = *test.Cursor, true
		}
		var got recording
		Draw(&got, s)

		if len(got) != len(test.Want) {
			t.Errorf("%s: got %q, want %q", test.Name, got, test.Want)
			continue
		}
		for i := range got {
			if got[i] != test.Want[i] {
				t.Errorf("%s[%d]: got %q, want %q", test.Name, i, got[i], test.Want[i])
			}
		}
	}
}

// Once the pointer leaves, the drag band stays at the last cursor position but
// there is no crosshair.
func TestDrawAfterLeave(t *testing.T) {
	band := fmt.Sprintf("%v", BandColor)

	s := interact.Snapshot{State: drag(interact.Zoom, 30), Cursor: interact.Point{X: 80, Y: 60}, Rect: rect}
	var got recording
	Draw(&got, s)
	if len(got) != 3 || got[2] != "fill 30,20 50x50 "+band {
		t.Errorf("zoom drag after leave: got %q", got)
	}

	s = interact.Snapshot{State: interact.State{}, Cursor: interact.Point{X: 80, Y: 60}, Rect: rect}
	got = nil
	Draw(&got, s)
	if len(got) != 0 {
		t.Errorf("idle after leave: got %q", got)
	}
}
