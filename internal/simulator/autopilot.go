package simulator

import (
	"math"

	"github.com/chrisdamba/dronedash/internal/models"
)

// Autopilot flies the headless runner: turn toward the target, fly while
// roughly aligned, cruise high and drop once close.
type Autopilot struct {
	CruiseAltitude float64 // m above ground
	AltitudeBand   float64
	AlignTolerance float64 // degrees either side of the target bearing
	FlyTolerance   float64
	DescendRadius  float64
	BrakeTime      float64 // s of coasting to allow for before the target
	TurboDistance  float64
}

func NewAutopilot(cfg *models.Config) *Autopilot {
	return &Autopilot{
		CruiseAltitude: 40,
		AltitudeBand:   5,
		AlignTolerance: 5,
		FlyTolerance:   30,
		DescendRadius:  math.Min(cfg.Delivery.PickupRadius, cfg.Delivery.DeliveryRadius) * 0.8,
		BrakeTime:      0.7,
		TurboDistance:  500,
	}
}

func (a *Autopilot) Controls(snap SessionSnapshot) models.Controls {
	var c models.Controls
	agl := snap.Drone.Altitude - snap.Ground
	nav := snap.Navigation
	if nav == nil {
		a.holdAltitude(&c, agl)
		return c
	}

	switch {
	case nav.RelativeBearing > a.AlignTolerance:
		c.YawRight = true
	case nav.RelativeBearing < -a.AlignTolerance:
		c.YawLeft = true
	}

	horizontal := math.Hypot(snap.Drone.VelocityEast, snap.Drone.VelocityNorth)
	stopping := a.DescendRadius + horizontal*a.BrakeTime
	aligned := math.Abs(nav.RelativeBearing) < a.FlyTolerance
	if aligned && nav.Distance > stopping {
		c.Forward = true
		c.Turbo = nav.Distance > a.TurboDistance && math.Abs(nav.RelativeBearing) < a.AlignTolerance
	}

	if nav.Distance < a.DescendRadius {
		c.Descend = true
	} else {
		a.holdAltitude(&c, agl)
	}
	return c
}

func (a *Autopilot) holdAltitude(c *models.Controls, agl float64) {
	switch {
	case agl < a.CruiseAltitude-a.AltitudeBand:
		c.Ascend = true
	case agl > a.CruiseAltitude+a.AltitudeBand:
		c.Descend = true
	}
}
