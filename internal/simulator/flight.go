package simulator

import (
	"math"

	"github.com/chrisdamba/dronedash/internal/geo"
	"github.com/chrisdamba/dronedash/internal/models"
)

const (
	forwardPitch  = -15.0 // nose down, degrees
	backPitch     = 10.0
	yawRoll       = 20.0
	attitudeLerp  = 0.1
	relaxLerp     = 0.05
	reverseFactor = 0.7
	strafeFactor  = 0.5
	minLonScale   = 1.0 // metres per degree, keeps the pole finite
)

// FlightModel integrates control input into the drone's pose.
type FlightModel struct {
	Config models.FlightConfig
}

func NewFlightModel(cfg models.FlightConfig) *FlightModel {
	return &FlightModel{Config: cfg}
}

// Step advances d by dt seconds. dt is clamped to [0, MaxDeltaTime] and any
// NaN in the state or the terrain is replaced by zero, so Step never fails.
func (fm *FlightModel) Step(d *models.DroneState, c models.Controls, dt float64, terrain TerrainProvider) {
	cfg := fm.Config
	dt = clampDelta(dt, cfg.MaxDeltaTime)
	sanitizeDrone(d)

	boost, drag := 1.0, cfg.Drag
	if c.Turbo {
		boost, drag = cfg.TurboMultiplier, cfg.TurboDrag
	}

	heading := d.Heading * math.Pi / 180
	fwdE, fwdN := math.Sin(heading), math.Cos(heading)
	rightE, rightN := math.Cos(heading), -math.Sin(heading)
	accel := cfg.Acceleration * dt * boost

	if c.Forward {
		d.VelocityEast += fwdE * accel
		d.VelocityNorth += fwdN * accel
	}
	if c.Back {
		d.VelocityEast -= fwdE * accel * reverseFactor
		d.VelocityNorth -= fwdN * accel * reverseFactor
	}
	switch {
	case c.Forward && !c.Back:
		d.Pitch = lerp(d.Pitch, forwardPitch, attitudeLerp)
	case c.Back && !c.Forward:
		d.Pitch = lerp(d.Pitch, backPitch, attitudeLerp)
	default:
		d.Pitch = lerp(d.Pitch, 0, relaxLerp)
	}

	if c.YawLeft {
		d.Heading -= cfg.TurnRate * dt
	}
	if c.YawRight {
		d.Heading += cfg.TurnRate * dt
	}
	switch {
	case c.YawLeft && !c.YawRight:
		d.Roll = lerp(d.Roll, -yawRoll, attitudeLerp)
	case c.YawRight && !c.YawLeft:
		d.Roll = lerp(d.Roll, yawRoll, attitudeLerp)
	default:
		d.Roll = lerp(d.Roll, 0, relaxLerp)
	}

	if c.StrafeLeft {
		d.VelocityEast -= rightE * accel * strafeFactor
		d.VelocityNorth -= rightN * accel * strafeFactor
	}
	if c.StrafeRight {
		d.VelocityEast += rightE * accel * strafeFactor
		d.VelocityNorth += rightN * accel * strafeFactor
	}
	if c.Ascend {
		d.VelocityUp += cfg.VerticalSpeed * dt * boost
	}
	if c.Descend {
		d.VelocityUp -= cfg.VerticalSpeed * dt * boost
	}

	d.VelocityEast *= drag
	d.VelocityNorth *= drag
	d.VelocityUp *= drag

	maxSpeed := cfg.MaxSpeed * boost
	if horizontal := math.Hypot(d.VelocityEast, d.VelocityNorth); horizontal > maxSpeed {
		scale := maxSpeed / horizontal
		d.VelocityEast *= scale
		d.VelocityNorth *= scale
	}

	lonScale := math.Max(geo.MetersPerDegreeLon(d.Lat), minLonScale)
	d.Lon += d.VelocityEast * dt / lonScale
	d.Lat += d.VelocityNorth * dt / geo.MetersPerDegree
	d.Altitude += d.VelocityUp * dt

	fm.ClampAltitude(d, groundAt(terrain, d.Lon, d.Lat))

	d.Heading = geo.NormalizeDegrees(d.Heading)
	d.Speed = math.Sqrt(d.VelocityEast*d.VelocityEast + d.VelocityNorth*d.VelocityNorth + d.VelocityUp*d.VelocityUp)
}

// ClampAltitude keeps d between the floor and ceiling above ground and
// kills vertical velocity on contact.
func (fm *FlightModel) ClampAltitude(d *models.DroneState, ground float64) {
	floor := ground + fm.Config.MinClearance
	ceiling := ground + fm.Config.MaxCeiling
	if d.Altitude < floor {
		d.Altitude = floor
		d.VelocityUp = 0
	} else if d.Altitude > ceiling {
		d.Altitude = ceiling
		d.VelocityUp = 0
	}
}

func clampDelta(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func sanitizeDrone(d *models.DroneState) {
	d.Lon = finiteOr(d.Lon, 0)
	d.Lat = finiteOr(d.Lat, 0)
	d.Altitude = finiteOr(d.Altitude, 0)
	d.Heading = finiteOr(d.Heading, 0)
	d.Pitch = finiteOr(d.Pitch, 0)
	d.Roll = finiteOr(d.Roll, 0)
	d.VelocityEast = finiteOr(d.VelocityEast, 0)
	d.VelocityNorth = finiteOr(d.VelocityNorth, 0)
	d.VelocityUp = finiteOr(d.VelocityUp, 0)
}
