// Package metric defines the derived quantities that can be plotted against a
// recording: how each is computed from a datapoint, how it is titled in a given
// unit system, and its display state (visibility, color).
package metric

import(
	"image/color"

	fp "github.com/skypies/flightplot"
)

// ValueFunc computes a metric from a datapoint. It must be total: defined for
// every datapoint, in either unit system.
type ValueFunc func(dp fp.Datapoint, u fp.Units) float64

// SuffixFunc returns the unit label for a title; nil means the metric is
// unit-less (ratios, counts, coefficients).
type SuffixFunc func(u fp.Units) string

// Def is everything needed to define a metric. Key is the stable identity used
// for persistence; it must never be derived from Name, which is for display.
type Def struct {
	Key        string
	Name       string
	Suffix     SuffixFunc
	Value      ValueFunc
	HasOptimal bool       // an optimal/reference curve can be overlaid for this metric

	Visible    bool       // compiled-in defaults
	Color      color.RGBA
}

// A Metric is one entry in a Registry. Display state changes only through
// SetVisible, SetColor or a settings load; nothing here triggers a repaint.
type Metric struct {
	def     Def
	visible bool
	color   color.RGBA
}

func New(def Def) *Metric {
	return &Metric{def: def, visible: def.Visible, color: def.Color}
}

func (m *Metric)String() string { return m.def.Key }

func (m *Metric)Key() string { return m.def.Key }
func (m *Metric)Name() string { return m.def.Name }
func (m *Metric)HasOptimal() bool { return m.def.HasOptimal }

// Title is the name plus a unit suffix, e.g. "Elevation (ft)".
func (m *Metric)Title(u fp.Units) string {
	if m.def.Suffix == nil { return m.def.Name }
	return m.def.Name + " (" + m.def.Suffix(u) + ")"
}

func (m *Metric)Value(dp fp.Datapoint, u fp.Units) float64 {
	return m.def.Value(dp, u)
}

func (m *Metric)Visible() bool { return m.visible }
func (m *Metric)SetVisible(v bool) { m.visible = v }
func (m *Metric)Color() color.RGBA { return m.color }
func (m *Metric)SetColor(c color.RGBA) { m.color = c }

// Reset restores the compiled-in visibility and color.
func (m *Metric)Reset() {
	m.visible, m.color = m.def.Visible, m.def.Color
}

// {{{ suffix & value helpers

func Fixed(s string) SuffixFunc { return func(fp.Units) string { return s } }
func DistanceSuffix(u fp.Units) string { return u.DistanceSuffix() }
func SpeedSuffix(u fp.Units) string { return u.SpeedSuffix() }

// Invariant wraps a quantity that reads the same in every unit system.
func Invariant(f func(fp.Datapoint) float64) ValueFunc {
	return func(dp fp.Datapoint, u fp.Units) float64 { return f(dp) }
}

// Distance wraps a quantity in meters.
func Distance(f func(fp.Datapoint) float64) ValueFunc {
	return func(dp fp.Datapoint, u fp.Units) float64 { return u.Distance(f(dp)) }
}

// Speed wraps a quantity in m/s.
func Speed(f func(fp.Datapoint) float64) ValueFunc {
	return func(dp fp.Datapoint, u fp.Units) float64 { return u.Speed(f(dp)) }
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
