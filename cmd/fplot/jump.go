package main

import(
	"math"
	"time"

	"github.com/skypies/geo"

	fp "github.com/skypies/flightplot"
)

// A jump profile for the synthetic track: exit, freefall, deployment, canopy.
type jumpProfile struct {
	Start       time.Time
	Exit        geo.Latlong
	ExitHMSL    float64 // m
	GroundHMSL  float64 // m
	DeployHMSL  float64 // m
	PlaneSpeed  float64 // m/s, heading north
	Terminal    float64 // m/s, freefall vertical speed
	CanopyDown  float64 // m/s
	CanopyFwd   float64 // m/s
	Hz          float64
}

func defaultJump(start time.Time) jumpProfile {
	return jumpProfile{
		Start:      start,
		Exit:       geo.Latlong{Lat: 37.4419, Long: -121.1694},
		ExitHMSL:   4100,
		GroundHMSL: 100,
		DeployHMSL: 1100,
		PlaneSpeed: 40,
		Terminal:   55,
		CanopyDown: 5,
		CanopyFwd:  10,
		Hz:         5,
	}
}

const metersPerDegLat = 111320.0

// synthesize integrates the profile into a track of datapoints, ending at the
// ground.
func (j jumpProfile)synthesize() fp.Track {
	dt := 1.0 / j.Hz
	t := fp.Track{}

	lat, long := j.Exit.Lat, j.Exit.Long
	h := j.ExitHMSL
	velN, velD := j.PlaneSpeed, 0.0
	deployedAt := -1.0

	for i := 0; h > j.GroundHMSL; i++ {
		secs := float64(i) * dt
		t = append(t, fp.Datapoint{
			TimestampUTC: j.Start.Add(time.Duration(secs * float64(time.Second))),
			Latlong:      geo.Latlong{Lat: lat, Long: long},
			HMSL:         h,
			VelN:         velN,
			VelD:         velD,
			HAcc:         1.5 + 0.5*math.Sin(secs/7),
			VAcc:         2.5 + 0.5*math.Cos(secs/5),
			SAcc:         0.3,
			NumSV:        11 + i/200%3,
		})

		if deployedAt < 0 && h <= j.DeployHMSL { deployedAt = secs }

		if deployedAt < 0 {
			// Freefall: vertical speed builds towards terminal, forward throw bleeds off
			velD += (j.Terminal - velD) * (1 - math.Exp(-dt/5.5))
			velN *= math.Exp(-dt / 6)
		} else {
			// Canopy: opening shock over about three seconds
			k := 1 - math.Exp(-dt/1.2)
			velD += (j.CanopyDown - velD) * k
			velN += (j.CanopyFwd - velN) * k
		}

		h -= velD * dt
		lat += velN * dt / metersPerDegLat
	}
	return t
}
