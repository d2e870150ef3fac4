package flightplot

import "fmt"

const(
	MetersToFeet = 3.28084
	MpsToMph     = 2.23694
	MpsToKmh     = 3.6

	KGravity     = 9.80665 // m/s^2
)

// Units selects the unit system every title and value is computed in. It is
// always passed explicitly; nothing in this module holds a global default.
type Units int
const(
	Metric Units = iota
	Imperial
)

func (u Units)String() string {
	switch u {
	case Metric:   return "metric"
	case Imperial: return "imperial"
	default:       return fmt.Sprintf("units(%d)", int(u))
	}
}

func ParseUnits(s string) (Units, error) {
	switch s {
	case "metric", "m":   return Metric, nil
	case "imperial", "i": return Imperial, nil
	default:              return Metric, fmt.Errorf("unknown unit system %q", s)
	}
}

// {{{ u.Distance, u.Speed

// Distance converts meters into the unit system (m or ft).
func (u Units)Distance(m float64) float64 {
	if u == Imperial { return m * MetersToFeet }
	return m
}

// Speed converts m/s into the unit system (km/h or mph).
func (u Units)Speed(mps float64) float64 {
	if u == Imperial { return mps * MpsToMph }
	return mps * MpsToKmh
}

func (u Units)DistanceSuffix() string {
	if u == Imperial { return "ft" }
	return "m"
}

func (u Units)SpeedSuffix() string {
	if u == Imperial { return "mph" }
	return "km/h"
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
