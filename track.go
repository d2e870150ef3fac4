package flightplot

import(
	"fmt"
	"math"
	"sort"
	"time"
)

// A Track is a slice of Datapoints, ordered in time, beginning to end.
type Track []Datapoint

type byTimestampAscending Track
func (a byTimestampAscending) Len() int           { return len(a) }
func (a byTimestampAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTimestampAscending) Less(i, j int) bool {
	return a[i].TimestampUTC.Before(a[j].TimestampUTC)
}

// Baseline holds the reference points that the derived fields are relative to.
// A zero Zero means "the first datapoint".
type Baseline struct {
	Zero   time.Time // the instant that becomes t=0
	Ground float64   // ground elevation above MSL, m
}

// Aero describes the flyer, for the lift & drag coefficients.
type Aero struct {
	MassKg      float64
	PlanformM2  float64
	AirDensity  float64 // kg/m^3
}

func DefaultAero() Aero {
	return Aero{MassKg: 70, PlanformM2: 2, AirDensity: 1.225}
}

func (t Track)Start() time.Time { return t[0].TimestampUTC }
func (t Track)End() time.Time { return t[len(t)-1].TimestampUTC }
func (t Track)Duration() time.Duration { return t.End().Sub(t.Start()) }

func (t Track)String() string {
	if len(t) == 0 { return "Track: 0 points" }
	str := fmt.Sprintf("Track: %d points, start=%s", len(t),
		t[0].TimestampUTC.Format("2006.01.02 15:04:05"))
	if len(t) > 1 {
		str += fmt.Sprintf(", %s, %.0fm travelled", t.Duration(), t[len(t)-1].Dist2D)
	}
	return str
}

// Sort puts the datapoints in time order; PostProcess presumes it.
func (t Track)Sort() { sort.Sort(byTimestampAscending(t)) }

// {{{ t.PostProcess

// PostProcess returns a copy of the track with every derived field filled in,
// relative to the baseline. Rates are central differences over the neighbouring
// points (one-sided at the ends); a zero time step yields a zero rate.
func (t Track)PostProcess(b Baseline, a Aero) Track {
	out := make(Track, len(t))
	copy(out, t)
	if len(out) == 0 { return out }

	zero := b.Zero
	if zero.IsZero() { zero = out[0].TimestampUTC }

	for i := range out {
		dp := &out[i]
		dp.T = dp.TimestampUTC.Sub(zero).Seconds()
		dp.Z = dp.HMSL - b.Ground

		if i == 0 {
			dp.Dist2D, dp.Dist3D = 0, 0
			continue
		}
		prev := out[i-1]
		d2 := prev.DistKM(dp.Latlong) * 1000.0
		dh := dp.HMSL - prev.HMSL
		dp.Dist2D = prev.Dist2D + d2
		dp.Dist3D = prev.Dist3D + math.Sqrt(d2*d2 + dh*dh)
	}

	for i := range out {
		lo, hi := i-1, i+1
		if lo < 0 { lo = 0 }
		if hi >= len(out) { hi = len(out)-1 }
		dt := out[hi].T - out[lo].T
		if dt <= 0 {
			out[i].Accel, out[i].Curv, out[i].ERate = 0, 0, 0
			out[i].Lift, out[i].Drag = 0, 0
			continue
		}

		pre, post := out[lo], out[hi]
		out[i].Accel = (post.TotalSpeed() - pre.TotalSpeed()) / dt
		out[i].Curv  = (post.DiveAngle() - pre.DiveAngle()) / dt
		out[i].ERate = (post.TotalEnergy() - pre.TotalEnergy()) / dt

		aN := (post.VelN - pre.VelN) / dt
		aE := (post.VelE - pre.VelE) / dt
		aD := (post.VelD - pre.VelD) / dt
		out[i].Lift, out[i].Drag = aeroCoefficients(out[i], aN, aE, aD, a)
	}

	return out
}

// aeroCoefficients splits the non-gravitational acceleration into components
// along (drag) and across (lift) the velocity vector, then normalizes by
// dynamic pressure.
func aeroCoefficients(dp Datapoint, aN, aE, aD float64, a Aero) (lift, drag float64) {
	v := dp.TotalSpeed()
	if v == 0 || a.PlanformM2 <= 0 || a.AirDensity <= 0 { return 0, 0 }

	// NED frame; gravity is +ve down
	aD -= KGravity

	uN, uE, uD := dp.VelN/v, dp.VelE/v, dp.VelD/v
	along := aN*uN + aE*uE + aD*uD
	pN, pE, pD := aN-along*uN, aE-along*uE, aD-along*uD
	across := math.Sqrt(pN*pN + pE*pE + pD*pD)

	q := 0.5 * a.AirDensity * v * v * a.PlanformM2
	return across * a.MassKg / q, -along * a.MassKg / q
}

// }}}
// {{{ t.Interpolate

// Interpolate finds where xf(dp) == x along the track, and linearly
// interpolates yf there. xf must be non-decreasing along the track. The bool is
// false if x lies outside the track.
func (t Track)Interpolate(x float64, xf, yf func(Datapoint) float64) (float64, bool) {
	if len(t) == 0 { return 0, false }
	if x < xf(t[0]) || x > xf(t[len(t)-1]) { return 0, false }

	i := sort.Search(len(t), func(i int) bool { return xf(t[i]) >= x })
	if i == 0 { return yf(t[0]), true }

	x1, x2 := xf(t[i-1]), xf(t[i])
	y1, y2 := yf(t[i-1]), yf(t[i])
	if x2 == x1 { return y2, true }

	ratio := (x - x1) / (x2 - x1)
	return y1 + (y2-y1)*ratio, true
}

// Extent returns the smallest and largest xf over the track.
func (t Track)Extent(xf func(Datapoint) float64) (lo, hi float64, ok bool) {
	for i, dp := range t {
		v := xf(dp)
		if i == 0 || v < lo { lo = v }
		if i == 0 || v > hi { hi = v }
	}
	return lo, hi, len(t) > 0
}

// }}}
// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
