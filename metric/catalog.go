package metric

import(
	"image/color"

	fp "github.com/skypies/flightplot"
)

// Stable identity keys. These are persisted; never rename one.
const(
	KeyElevation          = "elevation"
	KeyVerticalSpeed      = "verticalSpeed"
	KeyHorizontalSpeed    = "horizontalSpeed"
	KeyTotalSpeed         = "totalSpeed"
	KeyDiveAngle          = "diveAngle"
	KeyCurvature          = "curvature"
	KeyGlideRatio         = "glideRatio"
	KeyHorizontalAccuracy = "horizontalAccuracy"
	KeyVerticalAccuracy   = "verticalAccuracy"
	KeySpeedAccuracy      = "speedAccuracy"
	KeyNumberOfSatellites = "numberOfSatellites"
	KeyAcceleration       = "acceleration"
	KeyTotalEnergy        = "totalEnergy"
	KeyEnergyRate         = "energyRate"
	KeyLiftCoefficient    = "liftCoefficient"
	KeyDragCoefficient    = "dragCoefficient"

	KeyTime               = "time"
	KeyDistance2D         = "distance2D"
	KeyDistance3D         = "distance3D"
)

var(
	Black       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Blue        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Magenta     = color.RGBA{0xff, 0x00, 0xff, 0xff}
	DarkRed     = color.RGBA{0x80, 0x00, 0x00, 0xff}
	DarkGreen   = color.RGBA{0x00, 0x80, 0x00, 0xff}
	DarkBlue    = color.RGBA{0x00, 0x00, 0x80, 0xff}
	DarkYellow  = color.RGBA{0x80, 0x80, 0x00, 0xff}
	DarkCyan    = color.RGBA{0x00, 0x80, 0x80, 0xff}
	DarkMagenta = color.RGBA{0x80, 0x00, 0x80, 0xff}
)

// ValueDefs is the catalog of plottable values, in display (and axis stacking)
// order.
func ValueDefs() []Def {
	return []Def{
		{Key: KeyElevation, Name: "Elevation", Suffix: DistanceSuffix,
			Value: Distance(fp.Datapoint.Elevation), HasOptimal: true, Visible: true, Color: Black},
		{Key: KeyVerticalSpeed, Name: "Vertical Speed", Suffix: SpeedSuffix,
			Value: Speed(fp.Datapoint.VerticalSpeed), HasOptimal: true, Color: Green},
		{Key: KeyHorizontalSpeed, Name: "Horizontal Speed", Suffix: SpeedSuffix,
			Value: Speed(fp.Datapoint.HorizontalSpeed), HasOptimal: true, Color: Red},
		{Key: KeyTotalSpeed, Name: "Total Speed", Suffix: SpeedSuffix,
			Value: Speed(fp.Datapoint.TotalSpeed), HasOptimal: true, Color: Blue},
		{Key: KeyDiveAngle, Name: "Dive Angle", Suffix: Fixed("deg"),
			Value: Invariant(fp.Datapoint.DiveAngle), HasOptimal: true, Color: Magenta},
		{Key: KeyCurvature, Name: "Dive Rate", Suffix: Fixed("deg/s"),
			Value: Invariant(fp.Datapoint.Curvature), HasOptimal: true, Color: DarkYellow},
		{Key: KeyGlideRatio, Name: "Glide Ratio",
			Value: Invariant(fp.Datapoint.GlideRatio), HasOptimal: true, Color: DarkCyan},
		{Key: KeyHorizontalAccuracy, Name: "Horizontal Accuracy", Suffix: DistanceSuffix,
			Value: Distance(fp.Datapoint.HorizontalAccuracy), Color: DarkRed},
		{Key: KeyVerticalAccuracy, Name: "Vertical Accuracy", Suffix: DistanceSuffix,
			Value: Distance(fp.Datapoint.VerticalAccuracy), Color: DarkGreen},
		{Key: KeySpeedAccuracy, Name: "Speed Accuracy", Suffix: SpeedSuffix,
			Value: Speed(fp.Datapoint.SpeedAccuracy), Color: DarkBlue},
		{Key: KeyNumberOfSatellites, Name: "Number of Satellites",
			Value: Invariant(fp.Datapoint.NumberOfSatellites), Color: DarkMagenta},
		{Key: KeyAcceleration, Name: "Acceleration", Suffix: Fixed("m/s^2"),
			Value: Invariant(fp.Datapoint.Acceleration), HasOptimal: true, Color: DarkRed},
		{Key: KeyTotalEnergy, Name: "Total Energy", Suffix: Fixed("J/kg"),
			Value: Invariant(fp.Datapoint.TotalEnergy), HasOptimal: true, Color: DarkGreen},
		{Key: KeyEnergyRate, Name: "Energy Rate", Suffix: Fixed("J/kg/s"),
			Value: Invariant(fp.Datapoint.EnergyRate), HasOptimal: true, Color: DarkBlue},
		{Key: KeyLiftCoefficient, Name: "Lift Coefficient",
			Value: Invariant(fp.Datapoint.LiftCoefficient), HasOptimal: true, Color: DarkGreen},
		{Key: KeyDragCoefficient, Name: "Drag Coefficient",
			Value: Invariant(fp.Datapoint.DragCoefficient), HasOptimal: true, Color: DarkBlue},
	}
}

// XAxisDefs are the quantities that can serve as the shared horizontal axis.
func XAxisDefs() []Def {
	return []Def{
		{Key: KeyTime, Name: "Time", Suffix: Fixed("s"),
			Value: Invariant(fp.Datapoint.Time), HasOptimal: true, Color: Black},
		{Key: KeyDistance2D, Name: "Horizontal Distance", Suffix: DistanceSuffix,
			Value: Distance(fp.Datapoint.Distance2D), HasOptimal: true, Color: Black},
		{Key: KeyDistance3D, Name: "Total Distance", Suffix: DistanceSuffix,
			Value: Distance(fp.Datapoint.Distance3D), HasOptimal: true, Color: Black},
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
