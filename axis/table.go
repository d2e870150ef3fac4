package axis

import(
	"fmt"

	"github.com/skypies/flightplot/metric"
)

// An Axis is the value axis assigned to one visible metric.
type Axis struct {
	Metric   *metric.Metric
	Position int   // stacking position, 0 is next to the plot
	Range    Range
	ranged   bool
}

// Ranged is false until the axis has been given a range.
func (a *Axis)Ranged() bool { return a.ranged }

// Table is the side table from metrics to their axes. An axis exists exactly
// while its metric is visible; Sync creates and drops them.
type Table struct {
	axes  map[*metric.Metric]*Axis
	order []*Axis
}

func NewTable() *Table {
	return &Table{axes: map[*metric.Metric]*Axis{}}
}

// Sync makes the table match the visible metrics, which must be in registry
// order. Axes of metrics that stay visible keep their range.
func (t *Table)Sync(visible []*metric.Metric) {
	next := map[*metric.Metric]*Axis{}
	order := make([]*Axis, 0, len(visible))
	for i,m := range visible {
		a,exists := t.axes[m]
		if !exists {
			a = &Axis{Metric: m}
		}
		a.Position = i
		next[m] = a
		order = append(order, a)
	}
	t.axes, t.order = next, order
}

func (t *Table)Len() int { return len(t.order) }

// Axes returns the axes in stacking order.
func (t *Table)Axes() []*Axis { return append([]*Axis(nil), t.order...) }

func (t *Table)Lookup(m *metric.Metric) (*Axis, bool) {
	a,exists := t.axes[m]
	return a, exists
}

// Axis returns the axis of a visible metric. Asking for the axis of a metric
// that has none is a programming error.
func (t *Table)Axis(m *metric.Metric) *Axis {
	a,exists := t.axes[m]
	if !exists {
		panic(fmt.Sprintf("axis: metric %q has no axis (not visible?)", m.Key()))
	}
	return a
}

// Apply copies found ranges onto their axes (sanitized), and leaves axes with
// no in-window data alone. Returns how many axes were updated.
func (t *Table)Apply(rs Ranges) int {
	n := 0
	for _,e := range rs {
		if !e.Found { continue }
		a,exists := t.axes[e.Metric]
		if !exists { continue }
		a.Range = e.Range.Sanitized()
		a.ranged = true
		n++
	}
	return n
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
