package axis

import(
	"math"
	"sort"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/metric"
)

// An Extent is the result of ranging one metric over a window. Found is false
// when no datapoint fell inside the window; Range is then meaningless and the
// metric's axis should be left as it was.
type Extent struct {
	Metric *metric.Metric
	Range  Range
	Found  bool
}

// Ranges holds one Extent per visible metric, in the order they were asked for.
type Ranges []Extent

func (rs Ranges)Lookup(m *metric.Metric) (Range, bool) {
	for _,e := range rs {
		if e.Metric == m { return e.Range, e.Found }
	}
	return Range{}, false
}

// A Scanner ranges metrics over windows of one track. It caches each
// datapoint's x-axis value; if those are non-decreasing (time always is) it
// binary searches for the window instead of testing every datapoint.
type Scanner struct {
	track  fp.Track
	units  fp.Units
	xs     []float64
	sorted bool
}

func NewScanner(t fp.Track, x *metric.Metric, u fp.Units) *Scanner {
	s := &Scanner{track: t, units: u, xs: make([]float64, len(t)), sorted: true}
	for i,dp := range t {
		s.xs[i] = x.Value(dp, u)
		if i > 0 && s.xs[i] < s.xs[i-1] { s.sorted = false }
	}
	return s
}

func (s *Scanner)Len() int { return len(s.xs) }
func (s *Scanner)Units() fp.Units { return s.units }
func (s *Scanner)Sorted() bool { return s.sorted }

// Extent is the full span of x values; false for an empty track.
func (s *Scanner)Extent() (Range, bool) {
	if len(s.xs) == 0 { return Range{}, false }
	if s.sorted { return Range{s.xs[0], s.xs[len(s.xs)-1]}, true }

	r := Range{s.xs[0], s.xs[0]}
	for _,x := range s.xs {
		r.Lower, r.Upper = math.Min(r.Lower, x), math.Max(r.Upper, x)
	}
	return r, true
}

// window returns the index span [lo,hi) that could hold in-window points.
func (s *Scanner)window(w Range) (int, int) {
	if !s.sorted { return 0, len(s.xs) }
	lo := sort.SearchFloat64s(s.xs, w.Lower)
	hi := sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > w.Upper })
	if hi < lo { hi = lo }
	return lo, hi
}

// Ranges computes min/max of each visible metric over the datapoints whose x
// value lies in the window (inclusive). Invisible metrics are skipped. A NaN
// value never contributes.
func (s *Scanner)Ranges(w Range, ms []*metric.Metric) Ranges {
	out := Ranges{}
	for _,m := range ms {
		if m.Visible() { out = append(out, Extent{Metric: m}) }
	}

	lo,hi := s.window(w)
	for i := lo; i < hi; i++ {
		if !w.Contains(s.xs[i]) { continue }
		for j := range out {
			v := out[j].Metric.Value(s.track[i], s.units)
			if math.IsNaN(v) { continue }

			e := &out[j]
			if !e.Found {
				e.Range, e.Found = Range{v, v}, true
				continue
			}
			if v < e.Range.Lower { e.Range.Lower = v }
			if v > e.Range.Upper { e.Range.Upper = v }
		}
	}
	return out
}

// Recompute is a one-shot Scanner.
func Recompute(w Range, t fp.Track, x *metric.Metric, ms []*metric.Metric, u fp.Units) Ranges {
	return NewScanner(t, x, u).Ranges(w, ms)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
