package shell

import(
	"fmt"
	"math"

	fp "github.com/skypies/flightplot"
	"github.com/skypies/flightplot/metric"
)

// A Value is one metric's value at some point along the track.
type Value struct {
	Metric *metric.Metric
	Value  float64
}

// Readout is every visible metric, interpolated at the cursor mark.
type Readout struct {
	X      float64 // the mark, in x axis units
	Time   float64 // seconds since zero
	Values []Value
}

func (r Readout)String() string {
	str := fmt.Sprintf("t=%.2fs", r.Time)
	for _,v := range r.Values {
		str += fmt.Sprintf(" %s=%.2f", v.Metric.Key(), v.Value)
	}
	return str
}

// Stat summarises one metric over a measured span.
type Stat struct {
	Metric         *metric.Metric
	Start, End     float64
	Change         float64
	Min, Mean, Max float64
}

// Measurement is a Stat per visible metric, over [Start,End] on the x axis.
type Measurement struct {
	Start, End float64
	Stats      []Stat
}

func (m Measurement)String() string {
	str := fmt.Sprintf("[%.2f, %.2f]", m.Start, m.End)
	for _,s := range m.Stats {
		str += fmt.Sprintf("\n  %-20s %10.2f %10.2f  d=%.2f  min/mean/max=%.2f/%.2f/%.2f",
			s.Metric.Name(), s.Start, s.End, s.Change, s.Min, s.Mean, s.Max)
	}
	return str
}

// {{{ v.valueAt

// valueAt interpolates m at x along the x axis. NaN if x is off the track.
func (v *Viewer)valueAt(m *metric.Metric, x float64) float64 {
	xf := func(dp fp.Datapoint) float64 { return v.x.Value(dp, v.units) }
	yf := func(dp fp.Datapoint) float64 { return m.Value(dp, v.units) }
	y,ok := v.track.Interpolate(x, xf, yf)
	if !ok { return math.NaN() }
	return y
}

// }}}
// {{{ v.ReadoutAt

func (v *Viewer)ReadoutAt(x float64) Readout {
	r := Readout{X: x, Time: v.timeAt(x)}
	for _,m := range v.values.Visible() {
		r.Values = append(r.Values, Value{Metric: m, Value: v.valueAt(m, x)})
	}
	return r
}

// }}}
// {{{ v.Measure

// Measure summarises every visible metric between two x coordinates, in
// either order. Min, mean and max are over the datapoints inside the span,
// plus the interpolated ends.
func (v *Viewer)Measure(a, b float64) Measurement {
	lo, hi := math.Min(a, b), math.Max(a, b)
	out := Measurement{Start: a, End: b}

	for _,m := range v.values.Visible() {
		s := Stat{Metric: m, Start: v.valueAt(m, a), End: v.valueAt(m, b)}
		s.Change = s.End - s.Start

		n, sum := 0, 0.0
		s.Min, s.Max = math.Inf(1), math.Inf(-1)
		add := func(y float64) {
			if math.IsNaN(y) { return }
			n++
			sum += y
			s.Min, s.Max = math.Min(s.Min, y), math.Max(s.Max, y)
		}
		add(s.Start)
		add(s.End)
		for _,dp := range v.track {
			if x := v.x.Value(dp, v.units); x > lo && x < hi {
				add(m.Value(dp, v.units))
			}
		}

		if n == 0 {
			s.Min, s.Mean, s.Max = math.NaN(), math.NaN(), math.NaN()
		} else {
			s.Mean = sum / float64(n)
		}
		out.Stats = append(out.Stats, s)
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
