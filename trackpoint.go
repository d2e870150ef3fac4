package flightplot

import(
	"fmt"
	"math"
	"time"

	"github.com/skypies/geo"
)

// Datapoint is one timestamped GPS observation from a recording, plus the
// fields that Track.PostProcess derives from its neighbours. Once a track has
// been post-processed its datapoints are treated as read-only.
type Datapoint struct {
	TimestampUTC time.Time // Always in UTC

	geo.Latlong            // Embedded, so we can call the geo stuff directly on datapoints

	HMSL         float64   // Height above mean sea level, m
	VelN         float64   // North velocity, m/s
	VelE         float64   // East velocity, m/s
	VelD         float64   // Down velocity, m/s (+ve when descending)
	HAcc         float64   // Horizontal accuracy, m
	VAcc         float64   // Vertical accuracy, m
	SAcc         float64   // Speed accuracy, m/s
	NumSV        int       // Satellites used in the solution

	// These fields are derived, relative to the track's Baseline
	T            float64   // Seconds since the zero reference
	Z            float64   // Height above the ground reference, m
	Dist2D       float64   // Horizontal distance travelled since the first point, m
	Dist3D       float64   // Total distance travelled since the first point, m
	Accel        float64   // Rate of change of total speed, m/s^2
	Curv         float64   // Rate of change of dive angle, deg/s
	ERate        float64   // Rate of change of total energy, J/kg/s
	Lift         float64   // Lift coefficient
	Drag         float64   // Drag coefficient
}

func (dp Datapoint)String() string {
	return fmt.Sprintf("[%s] %s t=%.2fs z=%.0fm, h=%.1fm/s, v=%.1fm/s", dp.TimestampUTC,
		dp.Latlong, dp.T, dp.Z, dp.HorizontalSpeed(), dp.VerticalSpeed())
}

// {{{ physical quantities, SI units

func (dp Datapoint)Time() float64 { return dp.T }
func (dp Datapoint)Elevation() float64 { return dp.Z }
func (dp Datapoint)VerticalSpeed() float64 { return dp.VelD }

func (dp Datapoint)HorizontalSpeed() float64 {
	return math.Sqrt(dp.VelN*dp.VelN + dp.VelE*dp.VelE)
}

func (dp Datapoint)TotalSpeed() float64 {
	return math.Sqrt(dp.VelN*dp.VelN + dp.VelE*dp.VelE + dp.VelD*dp.VelD)
}

// DiveAngle is the angle of the velocity vector below the horizon, in degrees.
func (dp Datapoint)DiveAngle() float64 {
	return math.Atan2(dp.VelD, dp.HorizontalSpeed()) * 180 / math.Pi
}

// GlideRatio is horizontal over vertical speed; zero in level flight.
func (dp Datapoint)GlideRatio() float64 {
	if dp.VelD == 0 { return 0 }
	return dp.HorizontalSpeed() / dp.VelD
}

func (dp Datapoint)HorizontalAccuracy() float64 { return dp.HAcc }
func (dp Datapoint)VerticalAccuracy() float64 { return dp.VAcc }
func (dp Datapoint)SpeedAccuracy() float64 { return dp.SAcc }
func (dp Datapoint)NumberOfSatellites() float64 { return float64(dp.NumSV) }
func (dp Datapoint)Distance2D() float64 { return dp.Dist2D }
func (dp Datapoint)Distance3D() float64 { return dp.Dist3D }
func (dp Datapoint)Acceleration() float64 { return dp.Accel }
func (dp Datapoint)Curvature() float64 { return dp.Curv }

// TotalEnergy is kinetic plus potential energy per unit mass, with the ground
// reference as zero potential.
func (dp Datapoint)TotalEnergy() float64 {
	v := dp.TotalSpeed()
	return v*v/2 + KGravity*dp.Z
}

func (dp Datapoint)EnergyRate() float64 { return dp.ERate }
func (dp Datapoint)LiftCoefficient() float64 { return dp.Lift }
func (dp Datapoint)DragCoefficient() float64 { return dp.Drag }

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
