package fpdf

// go test -v github.com/skypies/flightplot/fpdf

import(
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/axis"
	"github.com/skypies/flightplot/interact"
	"github.com/skypies/flightplot/metric"
)

func testPlot(t *testing.T) *Plot {
	reg := metric.Values()
	vs,_ := reg.Lookup(metric.KeyVerticalSpeed)
	vs.SetVisible(true)
	x,_ := metric.XAxes().Lookup(metric.KeyTime)

	tr := fp.Track{}
	for i := 0; i < 120; i++ {
		tr = append(tr, fp.Datapoint{T: float64(i) / 2, Z: 4000 - float64(i)*25, VelD: 50})
	}
	tr[40].Z = math.NaN()

	w := axis.Range{Lower: 5, Upper: 45}
	tbl := axis.NewTable()
	tbl.Sync(reg.Visible())
	tbl.Apply(axis.Recompute(w, tr, x, reg.All(), fp.Metric))

	return &Plot{Track: tr, X: x, Units: fp.Metric, Window: w, Axes: tbl,
		Start: time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC), Caption: "test jump"}
}

func TestOutput(t *testing.T) {
	p := testPlot(t)
	r := p.Rect()
	p.Overlay = &interact.Snapshot{
		State: interact.State{Drag: &interact.Drag{Tool: interact.Zoom, Anchor: interact.Point{X: r.Left + 20, Y: r.Top + 5}}},
		Cursor: interact.Point{X: r.Left + 60, Y: r.Top + 30},
		HasCursor: true,
		Rect: r,
	}

	var buf bytes.Buffer
	if err := p.Output(context.Background(), &buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output doesn't look like a PDF: %q", buf.Bytes()[:16])
	}
}

func TestPolyline(t *testing.T) {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()
	g := Grid{Fpdf: pdf, OffsetU: 20, OffsetV: 20, W: 200, H: 100,
		X: axis.Range{Lower: 2, Upper: 7}, Y: axis.Range{Lower: 0, Upper: 10}, LineColor: metric.Red}

	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{1, 1, 1, 1, math.NaN(), 1, 1, 1, 1, 1}

	// In-window segments end at x=2..8; the NaN at x=4 takes out two of them
	if n := g.Polyline(xs, ys); n != 5 {
		t.Errorf("drew %d segments, want 5", n)
	}
	if n := g.Polyline(xs, make([]float64, len(xs))); n != 7 {
		t.Errorf("drew %d segments, want 7", n)
	}

	g.X = axis.Range{Lower: 20, Upper: 30}
	if n := g.Polyline(xs, ys); n != 0 {
		t.Errorf("drew %d segments off the window", n)
	}
	if err := pdf.Error(); err != nil {
		t.Errorf("pdf: %v", err)
	}
}

func TestPlotRectMakesRoomForAxes(t *testing.T) {
	one, three := PlotRect(1), PlotRect(3)
	if three.Left-one.Left != 2*AxisWidth || three.Right != one.Right {
		t.Errorf("PlotRect(1)=%v PlotRect(3)=%v", one, three)
	}
}

// A Plot is a usable time axis for the controller: page mm in, seconds out.
func TestPlotAsMapper(t *testing.T) {
	p := testPlot(t)
	r := p.Rect()

	if got := p.PixelToCoord(r.Left); math.Abs(got-5) > 1e-9 {
		t.Errorf("left edge = %v, want 5", got)
	}
	if got := p.PixelToCoord(r.Right); math.Abs(got-45) > 1e-9 {
		t.Errorf("right edge = %v, want 45", got)
	}
	if got := p.CoordToPixel(p.PixelToCoord(r.Left + 33)); math.Abs(got-(r.Left+33)) > 1e-9 {
		t.Errorf("round trip = %v", got)
	}
	var _ interact.Mapper = p
}

func TestTicks(t *testing.T) {
	tests := []struct{
		In   axis.Range
		N    int
		Want []float64
	}{
		{axis.Range{Lower: 0, Upper: 10}, 5, []float64{0, 2, 4, 6, 8, 10}},
		{axis.Range{Lower: -3, Upper: 17}, 4, []float64{0, 5, 10, 15}},
		{axis.Range{Lower: 95, Upper: 105}, 2, []float64{95, 100, 105}},
		{axis.Range{Lower: 1, Upper: 1}, 5, nil},
	}
	for _,test := range tests {
		got := Ticks(test.In, test.N)
		if len(got) != len(test.Want) {
			t.Errorf("Ticks(%v,%d) = %v, want %v", test.In, test.N, got, test.Want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-test.Want[i]) > 1e-9 {
				t.Errorf("Ticks(%v,%d) = %v, want %v", test.In, test.N, got, test.Want)
				break
			}
		}
	}
}

func TestTickLabel(t *testing.T) {
	for in,want := range map[float64]string{0: "0", 1500: "1500", -20: "-20", 0.25: "0.25"} {
		if got := tickLabel(in); got != want {
			t.Errorf("tickLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
