package main

// go test -v github.com/skypies/flightplot/cmd/fplot

import(
	"math"
	"testing"
	"time"

	"github.com/skypies/flightplot/fpdf"
	"github.com/skypies/flightplot/interact"
	"github.com/skypies/flightplot/shell"
)

func jumpViewer() *shell.Viewer {
	v := shell.New(defaultJump(time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)).synthesize(), nil)
	v.SetRect(fpdf.PlotRect(v.Axes().Len()))
	return v
}

func TestDragZoom(t *testing.T) {
	fTool, fDrag = "Zoom", "20,10"
	defer func() { fTool, fDrag = "pan", "" }()

	v := jumpViewer()
	drag(v)

	if w := v.Window(); math.Abs(w.Lower-10) > 1e-6 || math.Abs(w.Upper-20) > 1e-6 {
		t.Errorf("window = %s, want [10,20]", w)
	}
	if v.Controller().State().Dragging() || v.Controller().Snapshot().Drag != nil {
		t.Errorf("drag left the controller in %s", v.Controller().State())
	}
	if v.Snapshot().Rect != fpdf.PlotRect(v.Axes().Len()) {
		t.Errorf("controller rect drifted from the page layout")
	}
}

func TestDragZero(t *testing.T) {
	fTool, fDrag = "zero", "30,30"
	defer func() { fTool, fDrag = "pan", "" }()

	v := jumpViewer()
	zero := v.Baseline().Zero
	drag(v)

	if got := v.Baseline().Zero.Sub(zero); math.Abs(got.Seconds()-30) > 1e-3 {
		t.Errorf("zero moved by %s, want 30s", got)
	}
	if v.Controller().Snapshot().State.Drag != nil {
		t.Errorf("still dragging")
	}
	var _ interact.Shell = v
}
