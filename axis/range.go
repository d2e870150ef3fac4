// Package axis holds the value ranges that back each plot axis: the shared
// time window, per-metric auto-ranging over that window, the linear mapping
// between coordinates and pixels, and the side table of per-metric axes.
package axis

import(
	"fmt"
	"math"
)

// A Range is a closed interval [Lower, Upper].
type Range struct {
	Lower, Upper float64
}

func (r Range)String() string { return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper) }

func (r Range)Size() float64 { return r.Upper - r.Lower }

// Contains is inclusive at both ends.
func (r Range)Contains(v float64) bool { return v >= r.Lower && v <= r.Upper }

// Ordered swaps the bounds if needed so that Lower <= Upper.
func (r Range)Ordered() Range {
	if r.Lower > r.Upper { return Range{r.Upper, r.Lower} }
	return r
}

func (r Range)Shift(delta float64) Range { return Range{r.Lower + delta, r.Upper + delta} }

// ScaleAbout rescales the range about x; every point p maps to x + (p-x)*f.
func (r Range)ScaleAbout(x, f float64) Range {
	return Range{x + (r.Lower-x)*f, x + (r.Upper-x)*f}
}

// Valid is true for finite, ordered, non-zero-width ranges.
func (r Range)Valid() bool {
	if math.IsNaN(r.Lower) || math.IsNaN(r.Upper) { return false }
	if math.IsInf(r.Lower, 0) || math.IsInf(r.Upper, 0) { return false }
	return r.Upper > r.Lower
}

// Sanitized returns a range that is safe to hand to an axis. A zero-width
// range is widened about its value by 5% of its magnitude (or by 1, at zero).
func (r Range)Sanitized() Range {
	r = r.Ordered()
	if r.Upper > r.Lower { return r }

	half := math.Abs(r.Lower) * 0.05
	if half == 0 { half = 1 }
	return Range{r.Lower - half, r.Upper + half}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
