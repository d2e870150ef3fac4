package axis

// go test -v github.com/skypies/flightplot/axis

import(
	"math"
	"math/rand"
	"testing"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/metric"
)

func timeAxis() *metric.Metric {
	m,_ := metric.XAxes().Lookup(metric.KeyTime)
	return m
}

// makeTrack builds datapoints with the given times and elevations.
func makeTrack(ts, zs []float64) fp.Track {
	t := fp.Track{}
	for i := range ts {
		t = append(t, fp.Datapoint{T: ts[i], Z: zs[i], VelD: zs[i] / 10})
	}
	return t
}

func TestScenarioInWindow(t *testing.T) {
	reg := metric.Values()
	tr := makeTrack([]float64{1, 5, 9}, []float64{100, 200, 150})

	rs := Recompute(Range{0, 10}, tr, timeAxis(), reg.All(), fp.Metric)
	if len(rs) != 1 {
		t.Fatalf("expected one extent (elevation only visible), got %d", len(rs))
	}
	elev,_ := reg.Lookup(metric.KeyElevation)
	r,found := rs.Lookup(elev)
	if !found || r != (Range{100, 200}) {
		t.Errorf("got %v,%v; want [100,200],true", r, found)
	}
}

func TestScenarioEmptyWindow(t *testing.T) {
	reg := metric.Values()
	tr := makeTrack([]float64{1, 5, 9}, []float64{100, 200, 150})
	elev,_ := reg.Lookup(metric.KeyElevation)

	rs := Recompute(Range{20, 30}, tr, timeAxis(), reg.All(), fp.Metric)
	if _,found := rs.Lookup(elev); found {
		t.Errorf("no datapoints in [20,30]; range should be absent")
	}

	// ... and the axis keeps its previous bounds
	tbl := NewTable()
	tbl.Sync(reg.Visible())
	tbl.Apply(Recompute(Range{0, 10}, tr, timeAxis(), reg.All(), fp.Metric))
	if n := tbl.Apply(rs); n != 0 {
		t.Errorf("Apply updated %d axes from an empty window", n)
	}
	if got := tbl.Axis(elev).Range; got != (Range{100, 200}) {
		t.Errorf("axis range changed to %v", got)
	}
}

func TestInclusiveBounds(t *testing.T) {
	reg := metric.Values()
	elev,_ := reg.Lookup(metric.KeyElevation)
	tr := makeTrack([]float64{1, 5, 9}, []float64{100, 200, 150})

	r,found := Recompute(Range{5, 9}, tr, timeAxis(), reg.All(), fp.Metric).Lookup(elev)
	if !found || r != (Range{150, 200}) {
		t.Errorf("got %v,%v; want [150,200]", r, found)
	}
	r,found = Recompute(Range{5, 5}, tr, timeAxis(), reg.All(), fp.Metric).Lookup(elev)
	if !found || r != (Range{200, 200}) {
		t.Errorf("single point window: got %v,%v", r, found)
	}
}

func bruteForce(w Range, tr fp.Track, x, m *metric.Metric, u fp.Units) (Range, bool) {
	r, found := Range{}, false
	for _,dp := range tr {
		if !w.Contains(x.Value(dp, u)) { continue }
		v := m.Value(dp, u)
		if !found {
			r, found = Range{v, v}, true
		}
		r.Lower, r.Upper = math.Min(r.Lower, v), math.Max(r.Upper, v)
	}
	return r, found
}

// Range scan agrees with a brute force min/max over the in-window points, for
// sorted and unsorted x values alike.
func TestRangesMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	reg := metric.Values()
	vs,_ := reg.Lookup(metric.KeyVerticalSpeed)
	vs.SetVisible(true)
	elev,_ := reg.Lookup(metric.KeyElevation)

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40)
		ts, zs := make([]float64, n), make([]float64, n)
		for i := range ts {
			ts[i] = float64(i) * 0.5
			zs[i] = rng.Float64()*4000 - 100
		}
		if trial%2 == 1 {
			rng.Shuffle(n, func(i, j int) { ts[i], ts[j] = ts[j], ts[i] })
		}
		tr := makeTrack(ts, zs)

		lo := rng.Float64()*25 - 3
		w := Range{lo, lo + rng.Float64()*10}
		for _,u := range []fp.Units{fp.Metric, fp.Imperial} {
			s := NewScanner(tr, timeAxis(), u)
			rs := s.Ranges(w, reg.All())
			for _,m := range []*metric.Metric{elev, vs} {
				got,gotFound := rs.Lookup(m)
				want,wantFound := bruteForce(w, tr, timeAxis(), m, u)
				if got != want || gotFound != wantFound {
					t.Errorf("trial %d %s %s (sorted=%v): got %v,%v want %v,%v",
						trial, m, u, s.Sorted(), got, gotFound, want, wantFound)
				}
			}
		}
	}
}

func TestScannerExtent(t *testing.T) {
	s := NewScanner(makeTrack([]float64{3, 1, 7}, []float64{0, 0, 0}), timeAxis(), fp.Metric)
	if s.Sorted() {
		t.Errorf("shuffled times should not be flagged as sorted")
	}
	if r,ok := s.Extent(); !ok || r != (Range{1, 7}) {
		t.Errorf("Extent = %v,%v", r, ok)
	}
	if _,ok := NewScanner(fp.Track{}, timeAxis(), fp.Metric).Extent(); ok {
		t.Errorf("empty track has no extent")
	}
}

func TestSanitized(t *testing.T) {
	tests := []struct{
		In, Want Range
	}{
		{Range{1, 2}, Range{1, 2}},
		{Range{2, 1}, Range{1, 2}},
		{Range{100, 100}, Range{95, 105}},
		{Range{-20, -20}, Range{-21, -19}},
		{Range{0, 0}, Range{-1, 1}},
	}
	for _,test := range tests {
		got := test.In.Sanitized()
		if got != test.Want || !got.Valid() {
			t.Errorf("%v.Sanitized() = %v, want %v", test.In, got, test.Want)
		}
	}
	if (Range{math.NaN(), 1}).Valid() || (Range{0, math.Inf(1)}).Valid() || (Range{1, 1}).Valid() {
		t.Errorf("Valid accepted a bad range")
	}
}

func TestTableSync(t *testing.T) {
	reg := metric.Values()
	elev,_ := reg.Lookup(metric.KeyElevation)
	gr,_ := reg.Lookup(metric.KeyGlideRatio)
	vs,_ := reg.Lookup(metric.KeyVerticalSpeed)

	tbl := NewTable()
	tbl.Sync(reg.Visible())
	tbl.Axis(elev).Range = Range{1, 2}

	gr.SetVisible(true)
	vs.SetVisible(true)
	tbl.Sync(reg.Visible())

	want := []*metric.Metric{elev, vs, gr}
	axes := tbl.Axes()
	if len(axes) != len(want) {
		t.Fatalf("got %d axes, want %d", len(axes), len(want))
	}
	for i,a := range axes {
		if a.Metric != want[i] || a.Position != i {
			t.Errorf("axis %d: %s at %d", i, a.Metric, a.Position)
		}
	}
	if got := tbl.Axis(elev).Range; got != (Range{1, 2}) {
		t.Errorf("elevation lost its range over a sync: %v", got)
	}

	vs.SetVisible(false)
	tbl.Sync(reg.Visible())
	if _,exists := tbl.Lookup(vs); exists {
		t.Errorf("hidden metric kept its axis")
	}
	if tbl.Axis(gr).Position != 1 {
		t.Errorf("glide ratio should have moved in to position 1")
	}
}

func TestTableAxisOfHiddenMetricPanics(t *testing.T) {
	reg := metric.Values()
	vs,_ := reg.Lookup(metric.KeyVerticalSpeed)
	tbl := NewTable()
	tbl.Sync(reg.Visible())

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	tbl.Axis(vs)
}

func TestTableApplySanitizes(t *testing.T) {
	reg := metric.Values()
	elev,_ := reg.Lookup(metric.KeyElevation)
	tbl := NewTable()
	tbl.Sync(reg.Visible())

	if tbl.Axis(elev).Ranged() {
		t.Errorf("fresh axis claims a range")
	}
	tbl.Apply(Ranges{{Metric: elev, Range: Range{500, 500}, Found: true}})
	a := tbl.Axis(elev)
	if !a.Ranged() || !a.Range.Valid() || !a.Range.Contains(500) {
		t.Errorf("degenerate range not sanitized: %v", a.Range)
	}
}

func TestScale(t *testing.T) {
	s := Scale{Range: Range{0, 10}, Low: 25, High: 275}
	if got := s.PixelToCoord(50); math.Abs(got-1) > 1e-9 {
		t.Errorf("PixelToCoord(50) = %v", got)
	}
	if got := s.CoordToPixel(8); math.Abs(got-225) > 1e-9 {
		t.Errorf("CoordToPixel(8) = %v", got)
	}

	v := Scale{Range: Range{0, 100}, Low: 10, High: 110, Inverted: true}
	if got := v.CoordToPixel(0); got != 110 {
		t.Errorf("inverted CoordToPixel(0) = %v", got)
	}
	for _,px := range []float64{10, 33, 110} {
		if got := v.CoordToPixel(v.PixelToCoord(px)); math.Abs(got-px) > 1e-9 {
			t.Errorf("round trip %v -> %v", px, got)
		}
	}
}

func TestRangeOps(t *testing.T) {
	r := Range{0, 10}
	if got := r.ScaleAbout(5, math.Exp(-1)); math.Abs(got.Lower-3.1606) > 1e-3 || math.Abs(got.Upper-6.8394) > 1e-3 {
		t.Errorf("ScaleAbout = %v", got)
	}
	if got := r.Shift(-2.5); got != (Range{-2.5, 7.5}) {
		t.Errorf("Shift = %v", got)
	}
	if !r.Contains(0) || !r.Contains(10) || r.Contains(10.0001) {
		t.Errorf("Contains should be inclusive")
	}
}
